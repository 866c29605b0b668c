package audiotag

import "fmt"

type seekKind int

const (
	seekToStart seekKind = iota
	seekToEnd
	seekToSeconds
)

// SeekTarget is a requested playback position: the start, the end, or an
// explicit offset in seconds. A target is consumed immediately by Audio.Seek
// and never stored.
type SeekTarget struct {
	kind    seekKind
	seconds float64
}

var (
	// SeekStart targets position 0.
	SeekStart = SeekTarget{kind: seekToStart}
	// SeekEnd targets the element's duration at the time of the seek.
	SeekEnd = SeekTarget{kind: seekToEnd}
)

// SeekSeconds targets an explicit offset from the start, in seconds.
func SeekSeconds(seconds float64) SeekTarget {
	return SeekTarget{kind: seekToSeconds, seconds: seconds}
}

// String describes the target, for logging.
func (t SeekTarget) String() string {
	switch t.kind {
	case seekToStart:
		return "start"
	case seekToEnd:
		return "end"
	default:
		return fmt.Sprintf("%gs", t.seconds)
	}
}
