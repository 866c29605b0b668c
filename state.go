package audiotag

// State classifies what the element is doing right now. It is derived from
// the element's live `paused` and `ended` flags on every query and never
// stored, so it cannot drift.
type State int

const (
	// StatePlaying: not paused and not ended.
	StatePlaying State = iota
	// StatePaused: the element's `paused` flag is set.
	StatePaused
	// StateEnded: playback ran to the end and was not restarted.
	StateEnded
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
