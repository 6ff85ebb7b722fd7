// Package gonet implements the vex display backend on top of
// golang.org/x/net/html trees. It has no real event source; events are
// delivered explicitly with Fire, which makes it suitable for servers,
// tests and other headless hosts.
package gonet

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gowade/vex/vdom"
)

// Backend creates live nodes backed by *html.Node. Listener
// registrations and direct properties have no home on html.Node, so the
// backend keeps them in side maps keyed by node pointer.
type Backend struct {
	listeners map[*html.Node]map[string]func(vdom.Event)
	props     map[*html.Node]map[string]interface{}
}

func New() *Backend {
	return &Backend{
		listeners: map[*html.Node]map[string]func(vdom.Event){},
		props:     map[*html.Node]map[string]interface{}{},
	}
}

func (b *Backend) CreateElement(tag string) vdom.DOMNode {
	return Node{b, &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

func (b *Backend) CreateTextNode(data string) vdom.DOMNode {
	return Node{b, &html.Node{
		Type: html.TextNode,
		Data: data,
	}}
}

// NewRootFragment returns an empty container element for mounting an
// application.
func (b *Backend) NewRootFragment() Node {
	return b.CreateElement("div").(Node)
}

// Registrations counts the currently live platform-level listener
// registrations across all nodes.
func (b *Backend) Registrations() int {
	n := 0
	for _, tbl := range b.listeners {
		n += len(tbl)
	}

	return n
}

func (b *Backend) drop(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.drop(c)
	}

	delete(b.listeners, n)
	delete(b.props, n)
}

// Node is a live display node. It is comparable; two Nodes are the same
// node iff they wrap the same *html.Node.
type Node struct {
	b *Backend
	n *html.Node
}

func (d Node) IsElement() bool {
	return d.n.Type == html.ElementNode
}

func (d Node) Len() int {
	n := 0
	for c := d.n.FirstChild; c != nil; c = c.NextSibling {
		n++
	}

	return n
}

func (d Node) child(idx int) *html.Node {
	i := 0
	for c := d.n.FirstChild; c != nil; c = c.NextSibling {
		if i == idx {
			return c
		}
		i++
	}

	panic(fmt.Sprintf("no child at index %v", idx))
}

func (d Node) Child(idx int) vdom.DOMNode {
	return Node{d.b, d.child(idx)}
}

func (d Node) Append(c vdom.DOMNode) {
	d.n.AppendChild(c.(Node).n)
}

func (d Node) ReplaceChild(idx int, c vdom.DOMNode) {
	old := d.child(idx)
	d.n.InsertBefore(c.(Node).n, old)
	d.n.RemoveChild(old)
	d.b.drop(old)
}

func (d Node) RemoveChild(idx int) {
	old := d.child(idx)
	d.n.RemoveChild(old)
	d.b.drop(old)
}

func (d Node) SetAttr(attr string, value interface{}) {
	var vstr string
	switch v := value.(type) {
	case bool:
		if !v {
			d.RemoveAttr(attr)
			return
		}

		vstr = attr
	case string:
		vstr = v
	default:
		vstr = fmt.Sprint(value)
	}

	for i := range d.n.Attr {
		if d.n.Attr[i].Key == attr {
			d.n.Attr[i].Val = vstr
			return
		}
	}

	d.n.Attr = append(d.n.Attr, html.Attribute{Key: attr, Val: vstr})
}

func (d Node) RemoveAttr(attr string) {
	attrs := d.n.Attr[:0]
	for _, a := range d.n.Attr {
		if a.Key != attr {
			attrs = append(attrs, a)
		}
	}

	d.n.Attr = attrs
}

// Attr returns the value of a markup attribute.
func (d Node) Attr(attr string) (string, bool) {
	for _, a := range d.n.Attr {
		if a.Key == attr {
			return a.Val, true
		}
	}

	return "", false
}

func (d Node) SetProp(prop string, value interface{}) {
	tbl := d.b.props[d.n]
	if tbl == nil {
		tbl = map[string]interface{}{}
		d.b.props[d.n] = tbl
	}

	tbl[prop] = value
}

func (d Node) RemoveProp(prop string) {
	delete(d.b.props[d.n], prop)
}

// Prop returns the value of a direct property.
func (d Node) Prop(prop string) (interface{}, bool) {
	v, ok := d.b.props[d.n][prop]
	return v, ok
}

func (d Node) Listen(event string, fn func(vdom.Event)) {
	tbl := d.b.listeners[d.n]
	if tbl == nil {
		tbl = map[string]func(vdom.Event){}
		d.b.listeners[d.n] = tbl
	}

	tbl[event] = fn
}

func (d Node) Unlisten(event string) {
	tbl := d.b.listeners[d.n]
	delete(tbl, event)
	if len(tbl) == 0 {
		delete(d.b.listeners, d.n)
	}
}

// Fire delivers an event to this node's registered listener, if any.
func (d Node) Fire(event string, evt vdom.Event) {
	if fn := d.b.listeners[d.n][event]; fn != nil {
		fn(evt)
	}
}

// OuterHTML serializes the node and its subtree.
func (d Node) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.n); err != nil {
		panic(err)
	}

	return buf.String()
}

// Query runs a CSS selector over the node's subtree.
func (d Node) Query(selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(d.n).Find(selector)
}
