// Package browser implements the vex display backend on real DOM nodes
// via GopherJS. Importing it registers the backend and a
// requestAnimationFrame scheduler with the driver.
package browser

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"

	"github.com/gowade/vex/driver"
	"github.com/gowade/vex/vdom"
)

// Hidden marker property giving DOM nodes a stable identity on the Go
// side, so Node stays comparable across Child lookups.
const idProp = "__vexid"

var (
	document  *js.Object
	nodes     = map[int]*js.Object{}
	callbacks = map[int]map[string]*js.Object{}
	nextID    = 1
)

func init() {
	if js.Global == nil || js.Global.Get("document") == js.Undefined {
		panic("This package is only available in browser environment.")
	}

	document = js.Global.Get("document")
	driver.SetBackend(Backend{})
	driver.SetScheduler(frameScheduler{})
}

type Backend struct{}

func (Backend) CreateElement(tag string) vdom.DOMNode {
	return wrap(document.Call("createElement", tag))
}

func (Backend) CreateTextNode(data string) vdom.DOMNode {
	return wrap(document.Call("createTextNode", data))
}

// ElementByID returns the live node for an existing element, for use as
// a mount root.
func ElementByID(id string) vdom.DOMNode {
	elem := document.Call("getElementById", id)
	if elem == js.Undefined || elem == nil {
		panic(fmt.Sprintf("No element with id %v found", id))
	}

	return wrap(elem)
}

type Node struct {
	id int
}

func wrap(o *js.Object) Node {
	if id := o.Get(idProp); id != js.Undefined {
		return Node{id.Int()}
	}

	id := nextID
	nextID++
	o.Set(idProp, id)
	nodes[id] = o

	return Node{id}
}

func (d Node) js() *js.Object {
	return nodes[d.id]
}

func drop(o *js.Object) {
	children := o.Get("childNodes")
	for i := 0; i < children.Length(); i++ {
		drop(children.Index(i))
	}

	if id := o.Get(idProp); id != js.Undefined {
		delete(nodes, id.Int())
		delete(callbacks, id.Int())
	}
}

func (d Node) IsElement() bool {
	return d.js().Get("nodeType").Int() == 1
}

func (d Node) Len() int {
	return d.js().Get("childNodes").Length()
}

func (d Node) Child(idx int) vdom.DOMNode {
	c := d.js().Get("childNodes").Index(idx)
	if c == nil || c == js.Undefined {
		panic(fmt.Sprintf("no child at index %v", idx))
	}

	return wrap(c)
}

func (d Node) Append(c vdom.DOMNode) {
	d.js().Call("appendChild", c.(Node).js())
}

func (d Node) ReplaceChild(idx int, c vdom.DOMNode) {
	old := d.js().Get("childNodes").Index(idx)
	d.js().Call("replaceChild", c.(Node).js(), old)
	drop(old)
}

func (d Node) RemoveChild(idx int) {
	old := d.js().Get("childNodes").Index(idx)
	d.js().Call("removeChild", old)
	drop(old)
}

func (d Node) SetAttr(attr string, value interface{}) {
	o := d.js()

	var vstr string
	switch v := value.(type) {
	case bool:
		if !v {
			if o.Call("hasAttribute", attr).Bool() {
				o.Call("removeAttribute", attr)
			}

			return
		}

		vstr = attr
	case string:
		vstr = v
	default:
		vstr = fmt.Sprint(value)
	}

	o.Call("setAttribute", attr, vstr)
}

func (d Node) RemoveAttr(attr string) {
	d.js().Call("removeAttribute", attr)
}

func (d Node) SetProp(prop string, value interface{}) {
	d.js().Set(prop, value)
}

// Zero values restoring a stateful property when its attribute entry
// disappears from the virtual tree.
var propZero = map[string]interface{}{
	"value":         "",
	"checked":       false,
	"selected":      false,
	"selectedIndex": 0,
}

func (d Node) RemoveProp(prop string) {
	if zv, ok := propZero[prop]; ok {
		d.js().Set(prop, zv)
		return
	}

	d.js().Set(prop, nil)
}

func (d Node) Listen(event string, fn func(vdom.Event)) {
	cb := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		var evt *js.Object
		if len(args) > 0 {
			evt = args[0]
		}

		fn(evt)
		return nil
	})

	tbl := callbacks[d.id]
	if tbl == nil {
		tbl = map[string]*js.Object{}
		callbacks[d.id] = tbl
	}

	tbl[event] = cb
	d.js().Call("addEventListener", event, cb)
}

func (d Node) Unlisten(event string) {
	tbl := callbacks[d.id]
	cb := tbl[event]
	if cb == nil {
		return
	}

	d.js().Call("removeEventListener", event, cb)
	delete(tbl, event)
	if len(tbl) == 0 {
		delete(callbacks, d.id)
	}
}

type frameScheduler struct{}

func (frameScheduler) Schedule(fn func()) (cancel func()) {
	id := js.Global.Call("requestAnimationFrame", fn)
	return func() { js.Global.Call("cancelAnimationFrame", id) }
}
