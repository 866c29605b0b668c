package audiotag

// Media is the surface of the native audio element that an Audio handle
// drives. It is the complete list of what this package requires from the
// host: a tag test, attribute access, a handful of live properties and the
// two native methods.
//
// The `wasm` sub-package implements Media over a real DOM element; FakeMedia
// implements it in memory for tests. Implementations are expected to be
// direct pass-throughs -- they should hold no state of their own beyond the
// reference to the underlying element.
type Media interface {
	// TagName returns the element's tag name. The DOM reports it in upper
	// case for HTML documents ("AUDIO"); comparisons in this package are
	// case-insensitive.
	TagName() string

	// Attr returns the current value of the named attribute, or "" when the
	// attribute is absent.
	Attr(name string) string

	// SetAttr sets the named attribute to the given value, creating it if
	// needed. Setting "" removes the attribute instead, so flag attributes
	// turned off read back as absent, the way the element treats them.
	SetAttr(name, value string)

	// Paused mirrors the element's live `paused` flag.
	Paused() bool

	// Ended mirrors the element's live `ended` flag.
	Ended() bool

	// Duration returns the element's `duration` property, in seconds. It may
	// be NaN or +Inf while the element has no usable metadata; Audio.Duration
	// sanitizes that to 0.
	Duration() float64

	// CurrentTime returns the element's playback position, in seconds.
	CurrentTime() float64

	// SetCurrentTime seeks the element to the given position, in seconds.
	SetCurrentTime(seconds float64)

	// Volume returns the element's `volume` property, in [0, 1].
	Volume() float64

	// SetVolume writes the element's `volume` property. Callers are expected
	// to pass a value already in [0, 1]; Audio clamps before calling.
	SetVolume(v float64)

	// Play invokes the element's native play() method. Whether playback
	// actually starts is the browser's decision (autoplay policy included)
	// and is not surfaced here.
	Play()

	// Pause invokes the element's native pause() method.
	Pause()
}
