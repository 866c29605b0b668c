//go:build js && wasm

package wasm

import (
	"reflect"

	"github.com/gowebapi/webapi/dom"
	"github.com/gowebapi/webapi/html"
	"github.com/gowebapi/webapi/html/htmlevent"
)

// AsNode converts any pointer to a struct that extends dom.Node, back to a *dom.Node.
func AsNode(e NodeCompatible) *dom.Node {
	if IsNil(e) {
		return nil
	}
	if n, ok := e.(*dom.Node); ok {
		return n
	}
	if reflect.ValueOf(e).Kind() != reflect.Ptr {
		return nil
	}
	val := reflect.Indirect(reflect.ValueOf(e))
	val = val.FieldByName("Node") // Get dom.Node Value.
	if !val.IsValid() {
		return nil
	}
	val = val.Addr() // Get the *dom.Node Value.
	return val.Interface().(*dom.Node)
}

// AsHTML casts some type of element as an HTMLElement.
func AsHTML(e EventTargetCompatible) *html.HTMLElement {
	if IsNil(e) {
		return nil
	}
	return html.HTMLElementFromJS(e.JSValue())
}

// AsInput casts some type of element as an HTMLInputElement.
func AsInput(e EventTargetCompatible) *html.HTMLInputElement {
	if IsNil(e) {
		return nil
	}
	return html.HTMLInputElementFromJS(e.JSValue())
}

// AsButton casts some type of element as an HTMLButtonElement.
func AsButton(e EventTargetCompatible) *html.HTMLButtonElement {
	if IsNil(e) {
		return nil
	}
	return html.HTMLButtonElementFromJS(e.JSValue())
}

// AsKeyboardEvent casts some type of event as a KeyboardEvent.
func AsKeyboardEvent(e EventCompatible) *htmlevent.KeyboardEvent {
	if IsNil(e) {
		return nil
	}
	return htmlevent.KeyboardEventFromJS(e.JSValue())
}
