//go:build js && wasm

package wasm

import (
	"github.com/gowebapi/webapi/core/js"
	"github.com/gowebapi/webapi/dom"
	"github.com/gowebapi/webapi/dom/domcore"
)

// Compatible is an interface implemented by most of webapi types.
type Compatible interface {
	JSValue() js.Value
}

// EventTargetCompatible is the interface that all Element/Node types of the DOM implement.
type EventTargetCompatible interface {
	Compatible
	AddEventListener(_type string, callback *domcore.EventListenerValue, options *domcore.Union)
}

// NodeCompatible is an interface implemented by several of the webapi types that support having sub-nodes.
type NodeCompatible interface {
	EventTargetCompatible
	AppendChild(node *dom.Node) (_result *dom.Node)
	ChildNodes() *dom.NodeList
	RemoveChild(child *dom.Node) (_result *dom.Node)
}

// Element is the subset of the webapi element surface that the audio binding
// relies on: identity, attributes and event listening. Both *dom.Element and
// the html.HTML*Element types implement it.
type Element interface {
	EventTargetCompatible
	TagName() string
	Id() string
	SetId(value string)
	GetAttribute(qualifiedName string) (_result *string)
	SetAttribute(qualifiedName string, value string)
	RemoveAttribute(qualifiedName string)
	HasAttribute(qualifiedName string) (_result bool)
}

type EventCompatible interface {
	Compatible
	Bubbles() bool
	PreventDefault()
	StopPropagation()
	StopImmediatePropagation()
}

type KeyboardEventCompatible interface {
	EventCompatible
	Key() string
	Code() string
	KeyCode() uint
	CharCode() uint

	AltKey() bool
	CtrlKey() bool
	ShiftKey() bool
	MetaKey() bool

	Repeat() bool
	IsComposing() bool
}

// Key codes that can be used when comparing with a KeyboardEventCompatible.KeyCode()
const (
	KeyCodeNone  = uint(0)
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)
