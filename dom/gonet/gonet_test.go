package gonet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowade/vex/vdom"
)

func TestRenderAndQuery(t *testing.T) {
	b := New()
	p := vdom.NewPatcher(b, nil)

	root := b.NewRootFragment()
	tree := vdom.H("div", vdom.Attributes{"class": "box", "data-n": 3},
		vdom.H("span", nil, vdom.T("Awesome!")),
		vdom.H("input", vdom.Attributes{"type": "text", "value": "v"}),
	)
	root.Append(p.Render(tree))

	sel := root.Query("div.box span")
	require.Equal(t, 1, sel.Length())
	require.Equal(t, "Awesome!", sel.Text())

	div := root.Child(0).(Node)
	v, ok := div.Attr("data-n")
	require.True(t, ok)
	require.Equal(t, "3", v)

	// value goes through the property path, not the markup attributes
	input := div.Child(1).(Node)
	pv, ok := input.Prop("value")
	require.True(t, ok)
	require.Equal(t, "v", pv)
	_, ok = input.Attr("value")
	require.False(t, ok)
}

func TestBoolAttrs(t *testing.T) {
	b := New()
	p := vdom.NewPatcher(b, nil)
	root := b.NewRootFragment()

	cur := vdom.H("ul", vdom.Attributes{"hidden": true})
	root.Append(p.Render(cur))

	ul := root.Child(0).(Node)
	v, ok := ul.Attr("hidden")
	require.True(t, ok)
	require.Equal(t, "hidden", v)

	next := vdom.H("ul", vdom.Attributes{"hidden": false})
	p.Apply(root, vdom.DiffChildren([]vdom.Node{cur}, []vdom.Node{next}))
	_, ok = ul.Attr("hidden")
	require.False(t, ok)
}

func TestFireDispatchesToPatcher(t *testing.T) {
	b := New()
	var got []interface{}
	p := vdom.NewPatcher(b, func(msg interface{}) { got = append(got, msg) })
	root := b.NewRootFragment()

	root.Append(p.Render(vdom.H("button", vdom.Attributes{
		"onClick": func(vdom.Event) interface{} { return "pressed" },
	}, vdom.T("go"))))
	require.Equal(t, 1, b.Registrations())

	btn := root.Child(0).(Node)
	btn.Fire("click", nil)
	require.Equal(t, []interface{}{"pressed"}, got)

	// unregistered event types are a no-op
	btn.Fire("mouseover", nil)
	require.Equal(t, []interface{}{"pressed"}, got)
}

func TestDetachDropsSideState(t *testing.T) {
	b := New()
	p := vdom.NewPatcher(b, nil)
	root := b.NewRootFragment()

	cur := vdom.H("div", nil,
		vdom.H("button", vdom.Attributes{
			"onClick": func(vdom.Event) interface{} { return nil },
		}),
	)
	root.Append(p.Render(cur))
	require.Equal(t, 1, b.Registrations())

	p.Apply(root, vdom.DiffChildren([]vdom.Node{cur}, nil))
	require.Equal(t, 0, b.Registrations())
	require.Equal(t, 0, root.Len())
}

func TestOuterHTML(t *testing.T) {
	b := New()
	p := vdom.NewPatcher(b, nil)

	d := p.Render(vdom.H("div", vdom.Attributes{"class": "box"},
		vdom.T("hi"),
		vdom.H("span", nil, vdom.T("there")),
	)).(Node)

	require.Equal(t, `<div class="box">hi<span>there</span></div>`, d.OuterHTML())
}

func TestParseFragmentRoundTrip(t *testing.T) {
	src := `<div class="box">hi<span>there</span></div>`

	nodes, err := ParseFragment(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	e := nodes[0].(*vdom.Element)
	require.Equal(t, "div", e.Tag)
	require.Equal(t, vdom.Attributes{"class": "box"}, e.Attrs)
	require.Len(t, e.Children, 2)

	b := New()
	d := vdom.NewPatcher(b, nil).Render(nodes[0]).(Node)
	require.Equal(t, src, d.OuterHTML())
}
