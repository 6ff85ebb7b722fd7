// Headless counter application: a timer enqueues a message every
// second, the host pumps the refresh tick every 100ms, and each redraw
// is printed as HTML.
package main

import (
	"fmt"
	"time"

	"github.com/gowade/vex/dom/gonet"
	"github.com/gowade/vex/driver"
	"github.com/gowade/vex/rt"
	"github.com/gowade/vex/vdom"
)

type model struct {
	ticks int
}

func update(s rt.State, msg rt.Message) rt.State {
	m := s.(model)
	switch msg {
	case "tick":
		m.ticks++
	case "reset":
		m.ticks = 0
	}

	return m
}

func view(s rt.State) []vdom.Node {
	m := s.(model)
	return []vdom.Node{
		vdom.H("div", vdom.Attributes{"class": "counter"},
			vdom.H("p", nil, vdom.T(fmt.Sprintf("%d seconds elapsed", m.ticks))),
			vdom.H("button", vdom.Attributes{
				"onClick": func(vdom.Event) interface{} { return "reset" },
			}, vdom.T("reset")),
		),
	}
}

func main() {
	backend := gonet.New()
	root := backend.NewRootFragment()

	// the main goroutine pumps the scheduler itself, so all live-tree
	// access (ticks and snapshots alike) stays on one goroutine; the
	// timer goroutine only enqueues
	sched := driver.NewManualScheduler()
	app := rt.StartWith(backend, sched, root, model{}, update, view)

	go func() {
		for range time.Tick(time.Second) {
			app.Enqueue("tick")
		}
	}()

	last := ""
	for range time.Tick(100 * time.Millisecond) {
		sched.Tick()
		if h := root.OuterHTML(); h != last {
			fmt.Println(h)
			last = h
		}
	}
}
