package audiotag

import (
	"github.com/pkg/errors"

	"github.com/wasmlab/audiotag/common"
)

// Attribute names used on the native element. The looping flag is read and
// written through the one attribute the element actually defines, "loop".
const (
	attrControls = "controls"
	attrAutoplay = "autoplay"
	attrLoop     = "loop"
	attrMuted    = "muted"
	attrPreload  = "preload"
	attrSrc      = "src"
)

// The element's attribute idiom predates boolean typing: a flag is "on" when
// the attribute holds the string "true" and "off" when it is empty or absent.
// boolAttr and parseBoolAttr are the only encode/decode pair for that wire
// format -- Go bools never reach the element directly.

// boolAttr encodes a bool as the element's flag-attribute value.
func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return ""
}

// parseBoolAttr decodes the element's flag-attribute value. Anything other
// than exactly "true" (including an absent attribute's "") means false.
func parseBoolAttr(s string) bool {
	return s == "true"
}

// Preload is the hint given to the browser about how eagerly to fetch audio
// data before playback starts. The constant values are the exact lowercase
// wire strings of the element's `preload` attribute.
type Preload string

const (
	// PreloadNone suggests fetching nothing until playback is requested.
	PreloadNone Preload = "none"
	// PreloadMetadata suggests fetching only duration and friends.
	PreloadMetadata Preload = "metadata"
	// PreloadAuto lets the browser fetch as much as it sees fit.
	PreloadAuto Preload = "auto"
)

// ParsePreload converts a wire string back to a Preload, accepting only the
// three values the element defines.
func ParsePreload(s string) (Preload, error) {
	switch p := Preload(s); p {
	case PreloadNone, PreloadMetadata, PreloadAuto:
		return p, nil
	}
	return "", errors.Errorf("audiotag: invalid preload value %q (want %q, %q or %q)",
		s, PreloadNone, PreloadMetadata, PreloadAuto)
}

// attr returns the wire value written to the `preload` attribute. The zero
// Preload encodes as "auto", the element's own default.
func (p Preload) attr() string {
	if p == "" {
		return string(PreloadAuto)
	}
	return string(p)
}

// Settings is the initial configuration of an audio element. It is consumed
// exactly once, at construction time; afterwards the element itself is the
// only source of truth.
type Settings struct {
	// Controls shows the browser's built-in player UI.
	Controls bool
	// Autoplay asks the browser to start playback on load. The browser's
	// autoplay policy may still veto it.
	Autoplay bool
	// Loop restarts playback from the beginning when the end is reached.
	Loop bool
	// Preload hints how eagerly to fetch audio data. Zero value means
	// PreloadAuto.
	Preload Preload
	// Muted starts the element muted.
	Muted bool
	// Volume is the initial volume, clamped to [0, 1] when applied.
	Volume float64
}

// DefaultSettings returns the construction defaults: no browser controls, no
// autoplay, no looping, preload "auto", unmuted, volume 0.
func DefaultSettings() Settings {
	return Settings{Preload: PreloadAuto}
}

// Apply writes the settings onto the element: every flag attribute through
// the wire encoding, the preload wire string, and the volume property
// (clamped). Construction helpers call this once, right after creating the
// element.
func (s Settings) Apply(m Media) {
	m.SetAttr(attrControls, boolAttr(s.Controls))
	m.SetAttr(attrAutoplay, boolAttr(s.Autoplay))
	m.SetAttr(attrLoop, boolAttr(s.Loop))
	m.SetAttr(attrMuted, boolAttr(s.Muted))
	m.SetAttr(attrPreload, s.Preload.attr())
	m.SetVolume(common.InBetween(s.Volume, 0, 1))
}
