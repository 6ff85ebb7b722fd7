package vdom

// DOMNode is the live, platform-level realization of a Node.
//
// Implementations must be comparable and stable: calling Child twice
// with the same index must yield values that compare equal. The Patcher
// keys its listener side-table by DOMNode identity.
type DOMNode interface {
	IsElement() bool
	Len() int
	Child(int) DOMNode
	Append(DOMNode)
	ReplaceChild(int, DOMNode)
	RemoveChild(int)
	SetAttr(string, interface{})
	RemoveAttr(string)
	SetProp(string, interface{})
	RemoveProp(string)

	// Listen registers fn as the single platform-level listener for the
	// given event type. The Patcher calls Listen at most once per
	// (node, event) registration lifetime; handler changes in between
	// only swap entries in its side-table.
	Listen(event string, fn func(Event))
	Unlisten(event string)
}

// Backend creates live nodes for a display platform.
type Backend interface {
	CreateElement(tag string) DOMNode
	CreateTextNode(data string) DOMNode
}
