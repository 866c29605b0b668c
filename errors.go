package audiotag

import (
	"fmt"
	"strings"
)

// UnsupportedSourceError is returned by NewSource when the URL's file
// extension doesn't map to any supported audio format.
type UnsupportedSourceError struct {
	// URL is the offending input, kept verbatim.
	URL string
}

// Error implements the error interface.
func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("audiotag: no supported audio format for source %q (want .mp3, .ogg or .wav)", e.URL)
}

// NotMediaError is returned by New when the wrapped element is not an
// `<audio>` element.
type NotMediaError struct {
	// Tag is the element's tag name, as the element reported it.
	Tag string
}

// Error implements the error interface.
func (e *NotMediaError) Error() string {
	return fmt.Sprintf("audiotag: element <%s> is not an audio element", strings.ToLower(e.Tag))
}
