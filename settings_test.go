package audiotag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreload(t *testing.T) {
	for _, valid := range []string{"none", "metadata", "auto"} {
		p, err := ParsePreload(valid)
		require.NoError(t, err)
		assert.Equal(t, Preload(valid), p)
	}
	for _, invalid := range []string{"", "None", "eager", "metadata "} {
		_, err := ParsePreload(invalid)
		assert.Errorf(t, err, "ParsePreload(%q)", invalid)
	}
}

func TestDefaultSettings(t *testing.T) {
	// Every knob starts off except preloading, which defaults to the
	// browser's most eager mode.
	s := DefaultSettings()
	assert.False(t, s.Controls)
	assert.False(t, s.Autoplay)
	assert.False(t, s.Loop)
	assert.False(t, s.Muted)
	assert.Equal(t, PreloadAuto, s.Preload)
	assert.Equal(t, 0.0, s.Volume)
}

func TestSettingsApply(t *testing.T) {
	m := NewFakeMedia()
	DefaultSettings().Apply(m)
	assert.Equal(t, "", m.Attrs[attrControls])
	assert.Equal(t, "", m.Attrs[attrAutoplay])
	assert.Equal(t, "", m.Attrs[attrLoop])
	assert.Equal(t, "", m.Attrs[attrMuted])
	assert.Equal(t, "auto", m.Attrs[attrPreload])
	assert.Equal(t, 0.0, m.Vol)

	m = NewFakeMedia()
	s := Settings{
		Controls: true,
		Autoplay: true,
		Loop:     true,
		Preload:  PreloadMetadata,
		Muted:    true,
		Volume:   0.75,
	}
	s.Apply(m)
	assert.Equal(t, "true", m.Attrs[attrControls])
	assert.Equal(t, "true", m.Attrs[attrAutoplay])
	assert.Equal(t, "true", m.Attrs[attrLoop])
	assert.Equal(t, "true", m.Attrs[attrMuted])
	assert.Equal(t, "metadata", m.Attrs[attrPreload])
	assert.Equal(t, 0.75, m.Vol)

	// Volume is clamped on the way in, and a zero Preload falls back
	// to "auto".
	m = NewFakeMedia()
	Settings{Volume: 1.5}.Apply(m)
	assert.Equal(t, 1.0, m.Vol)
	assert.Equal(t, "auto", m.Attrs[attrPreload])
}

func TestBoolAttr(t *testing.T) {
	assert.Equal(t, "true", boolAttr(true))
	assert.Equal(t, "", boolAttr(false))

	assert.True(t, parseBoolAttr("true"))
	assert.False(t, parseBoolAttr(""))
	// Only the exact encoding counts; foreign attribute values read
	// as off rather than guessing.
	assert.False(t, parseBoolAttr("false"))
	assert.False(t, parseBoolAttr("loop"))
}
