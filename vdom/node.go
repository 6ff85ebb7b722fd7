package vdom

import "strings"

type Attributes map[string]interface{}

// Event is the platform-level event payload, passed through to handlers
// untouched.
type Event interface{}

// EvtHandler reacts to a platform event. A non-nil return value is
// forwarded to the runtime loop as a message; nil means no message.
type EvtHandler func(Event) interface{}

type Node interface {
	IsElement() bool
	NodeData() string
}

type TextNode struct {
	Data string
}

func (t *TextNode) IsElement() bool { return false }

func (t *TextNode) NodeData() string { return t.Data }

func NewTextNode(data string) *TextNode {
	return &TextNode{Data: data}
}

type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
}

func (t *Element) IsElement() bool { return true }

func (t *Element) NodeData() string { return t.Tag }

func NewElement(tag string, attrs Attributes, children []Node) *Element {
	return &Element{
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// H and T are shorthand constructors for view code.
func H(tag string, attrs Attributes, children ...Node) *Element {
	return NewElement(tag, attrs, children)
}

func T(data string) *TextNode {
	return NewTextNode(data)
}

const evtPrefix = "on"

// IsEvent reports whether an attribute name denotes an event handler
// ("onClick", "onInput", ...) rather than a plain attribute.
func IsEvent(attr string) bool {
	return len(attr) > len(evtPrefix) && strings.HasPrefix(attr, evtPrefix)
}

// EventName maps a handler attribute name to the platform event name,
// "onClick" -> "click".
func EventName(attr string) string {
	return strings.ToLower(attr[len(evtPrefix):])
}

// Stateful element properties that must be assigned directly; setting
// the markup attribute would not update live interactive state.
var domProps = map[string]bool{
	"value":         true,
	"checked":       true,
	"selected":      true,
	"selectedIndex": true,
}

// IsProp reports whether an attribute name must be set as a direct
// property of the live node instead of a markup attribute.
func IsProp(attr string) bool {
	return domProps[attr]
}
