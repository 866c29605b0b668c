package audiotag

// FakeMedia is an in-memory Media for tests and for running the handle logic
// outside a browser. Fields are exported so tests can arrange and assert
// element state directly.
type FakeMedia struct {
	Tag   string
	Attrs map[string]string

	IsPaused bool
	HasEnded bool

	// TotalSecs plays the role of the native `duration` property, PosSecs
	// of `currentTime`. Tests may set TotalSecs to math.NaN() or math.Inf(1)
	// to mimic an element before metadata or an unbounded stream.
	TotalSecs float64
	PosSecs   float64

	Vol float64

	// Call counters, for asserting pass-through behavior.
	PlayCalls  int
	PauseCalls int
}

var _ Media = (*FakeMedia)(nil)

// NewFakeMedia returns a fake audio element in the state a freshly created
// native one starts in: paused, not ended, empty attributes.
func NewFakeMedia() *FakeMedia {
	return &FakeMedia{
		Tag:      "audio",
		Attrs:    make(map[string]string),
		IsPaused: true,
	}
}

func (f *FakeMedia) TagName() string { return f.Tag }

func (f *FakeMedia) Attr(name string) string { return f.Attrs[name] }

func (f *FakeMedia) SetAttr(name, value string) {
	if value == "" {
		delete(f.Attrs, name)
		return
	}
	f.Attrs[name] = value
}

func (f *FakeMedia) Paused() bool { return f.IsPaused }

func (f *FakeMedia) Ended() bool { return f.HasEnded }

func (f *FakeMedia) Duration() float64 { return f.TotalSecs }

func (f *FakeMedia) CurrentTime() float64 { return f.PosSecs }

func (f *FakeMedia) SetCurrentTime(seconds float64) { f.PosSecs = seconds }

func (f *FakeMedia) Volume() float64 { return f.Vol }

func (f *FakeMedia) SetVolume(v float64) { f.Vol = v }

// Play clears the paused and ended flags, like the native element does when
// playback starts.
func (f *FakeMedia) Play() {
	f.PlayCalls++
	f.IsPaused = false
	f.HasEnded = false
}

// Pause sets the paused flag.
func (f *FakeMedia) Pause() {
	f.PauseCalls++
	f.IsPaused = true
}
