package vdom

import "fmt"

// Patcher materializes Nodes into live trees and applies Patches to
// them. It owns the listener side-table: a map from live-node identity
// to the current user handler per event type. At most one platform
// listener exists per (node, event) no matter how often the handler
// changes, and every registration is released when the node leaves the
// tree.
type Patcher struct {
	backend Backend
	enqueue func(interface{})
	events  map[DOMNode]map[string]EvtHandler
}

func NewPatcher(backend Backend, enqueue func(interface{})) *Patcher {
	if enqueue == nil {
		enqueue = func(interface{}) {}
	}

	return &Patcher{
		backend: backend,
		enqueue: enqueue,
		events:  map[DOMNode]map[string]EvtHandler{},
	}
}

// Render materializes node into a new live subtree.
func (p *Patcher) Render(node Node) DOMNode {
	if !node.IsElement() {
		return p.backend.CreateTextNode(node.NodeData())
	}

	e := node.(*Element)
	d := p.backend.CreateElement(e.Tag)
	for attr, v := range e.Attrs {
		p.set(d, attr, v)
	}

	for _, c := range e.Children {
		if c != nil {
			d.Append(p.Render(c))
		}
	}

	return d
}

// Apply transforms parent's live children according to patches, one
// patch per child position.
func (p *Patcher) Apply(parent DOMNode, patches []*Patch) {
	removed := 0
	for i, patch := range patches {
		idx := i - removed
		switch patch.Type {
		case Noop:
		case Remove:
			child := parent.Child(idx)
			p.Release(child)
			parent.RemoveChild(idx)
			removed++
		case Create:
			parent.Append(p.Render(patch.Content))
		case Replace:
			p.Release(parent.Child(idx))
			parent.ReplaceChild(idx, p.Render(patch.Content))
		case Modify:
			p.modify(parent.Child(idx), patch)
		}
	}
}

func (p *Patcher) modify(d DOMNode, patch *Patch) {
	for _, attr := range patch.RemovedAttrs {
		p.unset(d, attr)
	}

	for attr, v := range patch.SetAttrs {
		p.set(d, attr, v)
	}

	p.Apply(d, patch.Children)
}

func (p *Patcher) set(d DOMNode, attr string, v interface{}) {
	switch {
	case IsEvent(attr):
		p.setHandler(d, EventName(attr), toHandler(attr, v))
	case IsProp(attr):
		d.SetProp(attr, v)
	default:
		d.SetAttr(attr, v)
	}
}

func (p *Patcher) unset(d DOMNode, attr string) {
	switch {
	case IsEvent(attr):
		p.removeHandler(d, EventName(attr))
	case IsProp(attr):
		d.RemoveProp(attr)
	default:
		d.RemoveAttr(attr)
	}
}

func toHandler(attr string, v interface{}) EvtHandler {
	switch h := v.(type) {
	case EvtHandler:
		return h
	case func(Event) interface{}:
		return h
	}

	panic(fmt.Sprintf("attribute %v: %T is not an event handler", attr, v))
}

func (p *Patcher) setHandler(d DOMNode, event string, h EvtHandler) {
	tbl := p.events[d]
	if tbl == nil {
		tbl = map[string]EvtHandler{}
		p.events[d] = tbl
	}

	if _, registered := tbl[event]; !registered {
		// capture only the node and event name; the current handler is
		// looked up in the side-table at dispatch time
		d.Listen(event, func(evt Event) {
			p.Dispatch(d, event, evt)
		})
	}

	tbl[event] = h
}

func (p *Patcher) removeHandler(d DOMNode, event string) {
	tbl := p.events[d]
	if tbl == nil {
		return
	}

	if _, registered := tbl[event]; registered {
		delete(tbl, event)
		d.Unlisten(event)
	}

	if len(tbl) == 0 {
		delete(p.events, d)
	}
}

// Dispatch routes a platform event to the current handler for the
// (node, event) pair. A missing handler is a no-op: handler removal and
// platform deregistration are not atomic in every host. A non-nil
// handler result is forwarded to the runtime loop.
func (p *Patcher) Dispatch(d DOMNode, event string, evt Event) {
	h := p.events[d][event]
	if h == nil {
		return
	}

	if msg := h(evt); msg != nil {
		p.enqueue(msg)
	}
}

// Release deregisters every listener in the subtree rooted at d and
// drops the side-table entries. It must be called before d is detached
// or overwritten.
func (p *Patcher) Release(d DOMNode) {
	for i := 0; i < d.Len(); i++ {
		p.Release(d.Child(i))
	}

	for event := range p.events[d] {
		d.Unlisten(event)
	}

	delete(p.events, d)
}
