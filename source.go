package audiotag

import (
	"path"

	"github.com/wasmlab/audiotag/common"
)

// Format is one of the audio formats a Source can carry.
type Format int

const (
	// FormatUnknown is the zero Format; no Source is ever built with it.
	FormatUnknown Format = iota
	// FormatMP3 represents MPEG audio (".mp3").
	FormatMP3
	// FormatOgg represents Ogg audio (".ogg").
	FormatOgg
	// FormatWAV represents WAVE audio (".wav").
	FormatWAV
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatOgg:
		return "Ogg"
	case FormatWAV:
		return "WAV"
	default:
		return "unknown"
	}
}

// MIME returns the exact MIME string the browser expects on a `<source>`
// element's `type` attribute for this format, or "" for FormatUnknown. The
// strings matter for native type negotiation and must not be changed.
func (f Format) MIME() string {
	switch f {
	case FormatMP3:
		return "audio/mpeg"
	case FormatOgg:
		return "audio/ogg"
	case FormatWAV:
		return "audio/wav"
	default:
		return ""
	}
}

// FormatForURL infers the Format from the URL's file extension. Only the
// lowercase extensions ".mp3", ".ogg" and ".wav" are recognized; anything
// else (including upper-cased variants) yields FormatUnknown.
func FormatForURL(url string) Format {
	switch path.Ext(url) {
	case ".mp3":
		return FormatMP3
	case ".ogg":
		return FormatOgg
	case ".wav":
		return FormatWAV
	default:
		return FormatUnknown
	}
}

// Source is one candidate stream for an audio element: a format plus the URL
// to fetch it from. It is immutable once built; construct one with NewSource
// or MustNewSource.
type Source struct {
	format Format
	url    string
}

// NewSource builds a Source for the given URL, inferring the format from the
// URL's file extension. It returns an *UnsupportedSourceError when the
// extension is not one of ".mp3", ".ogg" or ".wav".
func NewSource(url string) (Source, error) {
	format := FormatForURL(url)
	if format == FormatUnknown {
		return Source{}, &UnsupportedSourceError{URL: url}
	}
	return Source{format: format, url: url}, nil
}

// MustNewSource is like NewSource but panics on an unsupported URL. Use it
// for hard-coded sources, where a bad extension is a programming error.
func MustNewSource(url string) Source {
	src, err := NewSource(url)
	if err != nil {
		common.Panicf("%v", err)
	}
	return src
}

// Format returns the source's audio format.
func (s Source) Format() Format { return s.format }

// URL returns the source's URL, verbatim as given at construction.
func (s Source) URL() string { return s.url }
