package gonet

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gowade/vex/vdom"
)

// ParseFragment parses an HTML fragment into virtual nodes, so hosts
// can seed a tree from existing markup.
func ParseFragment(src string) ([]vdom.Node, error) {
	nodes, err := html.ParseFragment(bytes.NewBufferString(strings.TrimSpace(src)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}

	result := make([]vdom.Node, 0, len(nodes))
	for _, n := range nodes {
		if vn := ToNode(n); vn != nil {
			result = append(result, vn)
		}
	}

	return result, nil
}

// ToNode converts an html.Node subtree to a virtual node. Node types
// with no virtual counterpart (comments, doctypes) convert to nil.
func ToNode(node *html.Node) vdom.Node {
	switch node.Type {
	case html.TextNode:
		return vdom.NewTextNode(node.Data)
	case html.ElementNode:
		var attrs vdom.Attributes
		if len(node.Attr) > 0 {
			attrs = vdom.Attributes{}
			for _, a := range node.Attr {
				attrs[a.Key] = a.Val
			}
		}

		var children []vdom.Node
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if cn := ToNode(c); cn != nil {
				children = append(children, cn)
			}
		}

		return vdom.NewElement(node.Data, attrs, children)
	}

	return nil
}
