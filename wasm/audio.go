//go:build js && wasm

package wasm

import (
	"github.com/gowebapi/webapi/dom"
	"github.com/pkg/errors"

	"github.com/wasmlab/audiotag"
	"github.com/wasmlab/audiotag/common"
)

// NewAudio creates an `<audio>` element with one `<source>` child per given
// source, applies the settings and wraps it all in a typed handle.
//
// The element is returned alongside the handle but is NOT placed in the DOM;
// append it wherever the page wants it, e.g. with `Append(parent, elem)`.
// Browsers play detached audio elements fine, so for a player without UI
// (no Settings.Controls) appending is optional.
func NewAudio(settings audiotag.Settings, sources ...audiotag.Source) (*audiotag.Audio, *dom.Element) {
	elem := NewElem("audio")
	elem.SetId(common.UniqueId() + "_audio")
	media := newElementMedia(elem)
	settings.Apply(media)
	for _, src := range sources {
		sourceElem := NewElem("source",
			"type="+src.Format().MIME(),
			"src="+src.URL())
		sourceElem.SetId(common.UniqueId() + "_source")
		Append(elem, sourceElem)
	}
	return audiotag.MustNew(media), elem
}

// FromElement wraps an existing DOM element in a typed audio handle. It fails
// if the element is not an `<audio>` element.
func FromElement(e Element) (*audiotag.Audio, error) {
	if IsNil(e) {
		return nil, errors.New("wasm: cannot wrap a nil element as audio")
	}
	return audiotag.New(newElementMedia(e))
}

// AsAudio casts some type of element as a typed audio handle, or nil if the
// element is not an `<audio>` element.
func AsAudio(e Element) *audiotag.Audio {
	a, err := FromElement(e)
	if err != nil {
		return nil
	}
	return a
}

// FromId wraps the `<audio>` element with the given id.
func FromId(id string) (*audiotag.Audio, error) {
	e := ById(id)
	if e == nil {
		return nil, errors.Errorf("wasm: no element with id %q in the document", id)
	}
	return FromElement(e)
}
