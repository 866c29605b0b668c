package audiotag

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/wasmlab/audiotag/common"
)

// Audio is a typed handle over exactly one native audio element. It holds no
// state of its own beyond the Media reference: every getter re-reads the
// element and every setter re-writes it, synchronously.
//
// An Audio never destroys its element; the element's lifetime belongs to
// whoever placed it in the DOM.
type Audio struct {
	media Media
}

// New wraps m in an Audio handle. It is the safe downcast from a generic
// element to the typed handle: it fails unless the element's tag is "audio"
// (compared case-insensitively, since the DOM upper-cases tag names in HTML
// documents).
func New(m Media) (*Audio, error) {
	if m == nil {
		return nil, errors.New("audiotag: cannot wrap a nil Media")
	}
	if tag := m.TagName(); !strings.EqualFold(tag, "audio") {
		return nil, &NotMediaError{Tag: tag}
	}
	return &Audio{media: m}, nil
}

// MustNew is like New but panics when m is not an audio element. Use it when
// the element was just constructed and the tag is known.
func MustNew(m Media) *Audio {
	a, err := New(m)
	if err != nil {
		common.Panicf("%v", err)
	}
	return a
}

// State reads the element's `paused` and `ended` flags and classifies them:
// paused wins, then ended, else playing.
func (a *Audio) State() State {
	if a.media.Paused() {
		return StatePaused
	}
	if a.media.Ended() {
		return StateEnded
	}
	return StatePlaying
}

// Play starts (or resumes) playback. When the element has ended, Play first
// rewinds to the start, so the position is 0 by the time this returns.
// Whether audible playback actually begins is the browser's decision -- a
// blocked autoplay policy is not surfaced here and only shows up in later
// State polls.
func (a *Audio) Play() {
	if a.State() == StateEnded {
		a.Seek(SeekStart)
	}
	a.media.Play()
}

// Pause pauses playback where it is.
func (a *Audio) Pause() {
	a.media.Pause()
}

// Stop pauses playback and rewinds to the start, leaving the element paused
// at position 0 whatever state it was in.
func (a *Audio) Stop() {
	a.Pause()
	a.Seek(SeekStart)
}

// TogglePlaying pauses a playing element and plays a paused one. An ended
// element is rewound and played again (that's Play's ended rule).
func (a *Audio) TogglePlaying() {
	if a.State() == StatePlaying {
		a.Pause()
		return
	}
	a.Play()
}

// SetSource overwrites the element's `src` attribute with the source's URL,
// replacing whatever the element was resolving before. The child `<source>`
// elements written at construction are left untouched; a direct `src` takes
// precedence over them.
func (a *Audio) SetSource(src Source) {
	a.media.SetAttr(attrSrc, src.URL())
}

// SetMuted writes the `muted` flag attribute through the wire encoding.
func (a *Audio) SetMuted(muted bool) {
	a.media.SetAttr(attrMuted, boolAttr(muted))
}

// IsMuted reads the `muted` flag attribute.
func (a *Audio) IsMuted() bool {
	return parseBoolAttr(a.media.Attr(attrMuted))
}

// ToggleMuted flips the `muted` flag and returns the new value.
func (a *Audio) ToggleMuted() bool {
	muted := !a.IsMuted()
	a.SetMuted(muted)
	return muted
}

// SetLooping writes the `loop` flag attribute through the wire encoding.
func (a *Audio) SetLooping(looping bool) {
	a.media.SetAttr(attrLoop, boolAttr(looping))
}

// IsLooping reads the `loop` flag attribute.
func (a *Audio) IsLooping() bool {
	return parseBoolAttr(a.media.Attr(attrLoop))
}

// ToggleLooping flips the `loop` flag and returns the new value.
func (a *Audio) ToggleLooping() bool {
	looping := !a.IsLooping()
	a.SetLooping(looping)
	return looping
}

// Volume reads the element's live `volume` property.
func (a *Audio) Volume() float64 {
	return a.media.Volume()
}

// SetVolume writes the `volume` property, silently clamping v to [0, 1].
func (a *Audio) SetVolume(v float64) {
	a.media.SetVolume(common.InBetween(v, 0, 1))
}

// ModVolume adds delta to the current volume, clamps the sum to [0, 1],
// writes it back and returns the volume actually set.
func (a *Audio) ModVolume(delta float64) float64 {
	v := common.InBetween(a.media.Volume()+delta, 0, 1)
	a.media.SetVolume(v)
	return v
}

// Seek moves the playback position to the target: 0 for SeekStart, the
// current Duration for SeekEnd, or the explicit offset of SeekSeconds.
func (a *Audio) Seek(t SeekTarget) {
	switch t.kind {
	case seekToStart:
		a.media.SetCurrentTime(0)
	case seekToEnd:
		a.media.SetCurrentTime(a.Duration())
	default:
		a.media.SetCurrentTime(t.seconds)
	}
}

// Duration returns the element's duration in seconds, or 0 while the element
// doesn't know it yet (the native property is NaN before metadata loads, and
// +Inf for unbounded streams).
func (a *Audio) Duration() float64 {
	d := a.media.Duration()
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0
	}
	return d
}
