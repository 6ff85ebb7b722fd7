// Browser counter application, compiled with GopherJS and mounted into
// <div id="app"></div>.
package main

import (
	"fmt"

	"github.com/gowade/vex/dom/browser"
	"github.com/gowade/vex/rt"
	"github.com/gowade/vex/vdom"
)

type model struct {
	count int
}

func update(s rt.State, msg rt.Message) rt.State {
	m := s.(model)
	switch msg {
	case "inc":
		m.count++
	case "dec":
		m.count--
	}

	return m
}

func view(s rt.State) []vdom.Node {
	m := s.(model)
	return []vdom.Node{
		vdom.H("div", nil,
			vdom.H("button", vdom.Attributes{
				"onClick": func(vdom.Event) interface{} { return "dec" },
			}, vdom.T("-")),
			vdom.H("span", nil, vdom.T(fmt.Sprint(m.count))),
			vdom.H("button", vdom.Attributes{
				"onClick": func(vdom.Event) interface{} { return "inc" },
			}, vdom.T("+")),
		),
	}
}

func main() {
	rt.Start(browser.ElementByID("app"), model{}, update, view)
}
