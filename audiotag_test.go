package audiotag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := NewFakeMedia()
	a, err := New(m)
	require.NoError(t, err)
	require.NotNil(t, a)

	// The DOM reports upper-cased tag names in HTML documents.
	m = NewFakeMedia()
	m.Tag = "AUDIO"
	_, err = New(m)
	assert.NoError(t, err)

	m = NewFakeMedia()
	m.Tag = "VIDEO"
	_, err = New(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<video>")
	var notMedia *NotMediaError
	require.ErrorAs(t, err, &notMedia)
	assert.Equal(t, "VIDEO", notMedia.Tag)

	_, err = New(nil)
	assert.Error(t, err)

	assert.NotPanics(t, func() { MustNew(NewFakeMedia()) })
	assert.Panics(t, func() {
		m := NewFakeMedia()
		m.Tag = "div"
		MustNew(m)
	})
}

func TestState(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	for _, test := range []struct {
		paused, ended bool
		want          State
	}{
		{true, false, StatePaused},
		{false, false, StatePlaying},
		{false, true, StateEnded},
		// Paused wins over ended, matching the element's own flags
		// after a pause at the very end of the track.
		{true, true, StatePaused},
	} {
		m.IsPaused, m.HasEnded = test.paused, test.ended
		assert.Equalf(t, test.want, a.State(), "paused=%v ended=%v", test.paused, test.ended)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "ended", StateEnded.String())
}

func TestPlayPause(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	a.Play()
	assert.Equal(t, 1, m.PlayCalls)
	assert.Equal(t, StatePlaying, a.State())

	a.Pause()
	assert.Equal(t, 1, m.PauseCalls)
	assert.Equal(t, StatePaused, a.State())

	// Resuming mid-track must not touch the position.
	m.PosSecs = 12.5
	a.Play()
	assert.Equal(t, 12.5, m.PosSecs)
	assert.Equal(t, 2, m.PlayCalls)
}

func TestPlayFromEnded(t *testing.T) {
	m := NewFakeMedia()
	m.IsPaused = false
	m.HasEnded = true
	m.TotalSecs = 30
	m.PosSecs = 30
	a := MustNew(m)
	require.Equal(t, StateEnded, a.State())

	// Playing an ended element restarts from the top.
	a.Play()
	assert.Equal(t, 0.0, m.PosSecs)
	assert.Equal(t, 1, m.PlayCalls)
	assert.Equal(t, StatePlaying, a.State())
}

func TestStop(t *testing.T) {
	arrange := func(paused, ended bool) (*FakeMedia, *Audio) {
		m := NewFakeMedia()
		m.IsPaused, m.HasEnded = paused, ended
		m.TotalSecs = 30
		m.PosSecs = 17
		return m, MustNew(m)
	}

	// Whatever the starting state, Stop lands on paused at 0.
	for _, test := range []struct{ paused, ended bool }{
		{false, false},
		{true, false},
		{false, true},
	} {
		m, a := arrange(test.paused, test.ended)
		a.Stop()
		assert.Equalf(t, StatePaused, a.State(), "from paused=%v ended=%v", test.paused, test.ended)
		assert.Equalf(t, 0.0, m.PosSecs, "from paused=%v ended=%v", test.paused, test.ended)
	}
}

func TestTogglePlaying(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	a.TogglePlaying()
	assert.Equal(t, StatePlaying, a.State())
	a.TogglePlaying()
	assert.Equal(t, StatePaused, a.State())

	// Toggling an ended element behaves like Play: rewind and go.
	m.IsPaused = false
	m.HasEnded = true
	m.PosSecs = 30
	a.TogglePlaying()
	assert.Equal(t, StatePlaying, a.State())
	assert.Equal(t, 0.0, m.PosSecs)
}

func TestMuted(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	assert.False(t, a.IsMuted())
	a.SetMuted(true)
	assert.True(t, a.IsMuted())
	assert.Equal(t, "true", m.Attrs[attrMuted])

	assert.False(t, a.ToggleMuted())
	assert.False(t, a.IsMuted())
	// Turning the flag off removes the attribute outright.
	assert.NotContains(t, m.Attrs, attrMuted)

	// Two toggles always land back where they started.
	before := a.IsMuted()
	a.ToggleMuted()
	a.ToggleMuted()
	assert.Equal(t, before, a.IsMuted())
}

func TestLooping(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	assert.False(t, a.IsLooping())
	a.SetLooping(true)
	assert.True(t, a.IsLooping())
	assert.Equal(t, "true", m.Attrs[attrLoop])

	assert.False(t, a.ToggleLooping())
	assert.True(t, a.ToggleLooping())
	assert.True(t, a.IsLooping())
}

func TestVolume(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	for _, test := range []struct{ set, want float64 }{
		{0.3, 0.3},
		{-0.5, 0},
		{1.5, 1},
		{0, 0},
		{1, 1},
	} {
		a.SetVolume(test.set)
		assert.Equalf(t, test.want, a.Volume(), "SetVolume(%g)", test.set)
	}
}

func TestModVolume(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	a.SetVolume(0.5)
	assert.InDelta(t, 0.3, a.ModVolume(-0.2), 1e-9)
	assert.InDelta(t, 0.3, m.Vol, 1e-9)

	a.SetVolume(0.9)
	assert.Equal(t, 1.0, a.ModVolume(0.5))
	assert.Equal(t, 1.0, a.Volume())

	a.SetVolume(0.1)
	assert.Equal(t, 0.0, a.ModVolume(-0.4))
	assert.Equal(t, 0.0, a.Volume())
}

func TestSeek(t *testing.T) {
	m := NewFakeMedia()
	m.TotalSecs = 30
	m.PosSecs = 17
	a := MustNew(m)

	a.Seek(SeekStart)
	assert.Equal(t, 0.0, m.PosSecs)

	a.Seek(SeekSeconds(12.5))
	assert.Equal(t, 12.5, m.PosSecs)

	// SeekEnd targets the duration known at call time.
	a.Seek(SeekEnd)
	assert.Equal(t, 30.0, m.PosSecs)

	// Before metadata the duration reads as 0, so SeekEnd falls back
	// to the start.
	m.TotalSecs = math.NaN()
	m.PosSecs = 17
	a.Seek(SeekEnd)
	assert.Equal(t, 0.0, m.PosSecs)
}

func TestSeekTargetString(t *testing.T) {
	assert.Equal(t, "start", SeekStart.String())
	assert.Equal(t, "end", SeekEnd.String())
	assert.Equal(t, "12.5s", SeekSeconds(12.5).String())
	assert.Equal(t, "0s", SeekSeconds(0).String())
}

func TestDuration(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	m.TotalSecs = 42
	assert.Equal(t, 42.0, a.Duration())

	// Not-yet-known, unbounded and nonsense durations all read as 0.
	m.TotalSecs = math.NaN()
	assert.Equal(t, 0.0, a.Duration())
	m.TotalSecs = math.Inf(1)
	assert.Equal(t, 0.0, a.Duration())
	m.TotalSecs = -1
	assert.Equal(t, 0.0, a.Duration())
}

func TestSetSource(t *testing.T) {
	m := NewFakeMedia()
	a := MustNew(m)

	a.SetSource(MustNewSource("intro.mp3"))
	assert.Equal(t, "intro.mp3", m.Attrs[attrSrc])

	a.SetSource(MustNewSource("outro.wav"))
	assert.Equal(t, "outro.wav", m.Attrs[attrSrc])
}
