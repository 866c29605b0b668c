//go:build js && wasm

package wasm

import (
	"github.com/gowebapi/webapi/core/js"

	"github.com/wasmlab/audiotag"
)

// elementMedia implements audiotag.Media over a live DOM element. Attributes
// go through the typed webapi surface; the playback properties and methods
// are not modeled by webapi's element types, so those go through the
// element's js.Value directly.
type elementMedia struct {
	elem  Element
	value js.Value
}

var _ audiotag.Media = (*elementMedia)(nil)

func newElementMedia(e Element) *elementMedia {
	return &elementMedia{elem: e, value: e.JSValue()}
}

func (m *elementMedia) TagName() string { return m.elem.TagName() }

func (m *elementMedia) Attr(name string) string {
	v := m.elem.GetAttribute(name)
	if v == nil {
		return ""
	}
	return *v
}

func (m *elementMedia) SetAttr(name, value string) {
	if value == "" {
		m.elem.RemoveAttribute(name)
		return
	}
	m.elem.SetAttribute(name, value)
}

func (m *elementMedia) Paused() bool { return m.value.Get("paused").Bool() }

func (m *elementMedia) Ended() bool { return m.value.Get("ended").Bool() }

func (m *elementMedia) Duration() float64 { return m.value.Get("duration").Float() }

func (m *elementMedia) CurrentTime() float64 { return m.value.Get("currentTime").Float() }

func (m *elementMedia) SetCurrentTime(seconds float64) { m.value.Set("currentTime", seconds) }

func (m *elementMedia) Volume() float64 { return m.value.Get("volume").Float() }

func (m *elementMedia) SetVolume(v float64) { m.value.Set("volume", v) }

func (m *elementMedia) Play() { m.value.Call("play") }

func (m *elementMedia) Pause() { m.value.Call("pause") }
