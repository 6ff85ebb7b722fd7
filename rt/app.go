// Package rt is the runtime loop binding application state, messages
// and redraws together. User code provides a pure update function
// folding messages into state and a pure view function rendering state
// to virtual nodes; the loop drains its message queue once per refresh
// tick, diffs the new view against the previous one and patches the
// live tree.
package rt

import (
	"sync"

	"github.com/gowade/vex/driver"
	"github.com/gowade/vex/vdom"
)

type (
	// State is the application state, opaque to the runtime.
	State interface{}

	// Message describes an intended state change, opaque to the runtime.
	Message interface{}

	UpdateFn func(State, Message) State

	ViewFn func(State) []vdom.Node
)

// App is a mounted application. All mutation of the live tree happens
// inside its tick handler; Enqueue is the only entry point for the
// outside world.
type App struct {
	update UpdateFn
	view   ViewFn

	root    vdom.DOMNode
	patcher *vdom.Patcher
	sched   driver.Scheduler

	mu      sync.Mutex
	queue   []Message
	cancel  func()
	stopped bool

	// state is written only by the tick handler, under mu so State can
	// read it concurrently; rendered is owned by the tick handler
	state    State
	rendered []vdom.Node
}

// Start mounts an application into root using the registered backend
// and scheduler.
func Start(root vdom.DOMNode, initial State, update UpdateFn, view ViewFn) *App {
	return StartWith(driver.Backend(), driver.Sched(), root, initial, update, view)
}

// StartWith is Start with an explicit backend and scheduler. The
// initial state is rendered synchronously before the first tick is
// requested.
func StartWith(backend vdom.Backend, sched driver.Scheduler,
	root vdom.DOMNode, initial State, update UpdateFn, view ViewFn) *App {

	app := &App{
		update: update,
		view:   view,
		root:   root,
		sched:  sched,
	}
	app.patcher = vdom.NewPatcher(backend, func(msg interface{}) {
		app.Enqueue(msg)
	})

	app.state = initial
	app.rendered = view(initial)
	for _, n := range app.rendered {
		if n != nil {
			root.Append(app.patcher.Render(n))
		}
	}

	app.mu.Lock()
	app.cancel = sched.Schedule(app.tick)
	app.mu.Unlock()

	return app
}

// Enqueue appends a message to the pending queue. It never processes
// messages itself; a message enqueued during a drain, including from
// inside update, is deferred to the next tick.
func (app *App) Enqueue(msg Message) {
	app.mu.Lock()
	if !app.stopped {
		app.queue = append(app.queue, msg)
	}
	app.mu.Unlock()
}

func (app *App) tick() {
	app.mu.Lock()
	if app.stopped {
		app.mu.Unlock()
		return
	}
	msgs := app.queue
	app.queue = nil
	app.mu.Unlock()

	// at most one view/diff/patch cycle per tick no matter how many
	// messages arrived in the interval
	if len(msgs) > 0 {
		state := app.state
		for _, msg := range msgs {
			state = app.update(state, msg)
		}

		next := app.view(state)
		app.patcher.Apply(app.root, vdom.DiffChildren(app.rendered, next))
		app.rendered = next

		// published only once the live tree matches, so observers never
		// see a drain that has not finished patching
		app.mu.Lock()
		app.state = state
		app.mu.Unlock()
	}

	app.mu.Lock()
	if !app.stopped {
		app.cancel = app.sched.Schedule(app.tick)
	}
	app.mu.Unlock()
}

// Stop unmounts the application: scheduling is cancelled, every
// listener registration is released and the root container is cleared.
// Messages enqueued after Stop are dropped.
func (app *App) Stop() {
	app.mu.Lock()
	if app.stopped {
		app.mu.Unlock()
		return
	}
	app.stopped = true
	cancel := app.cancel
	app.queue = nil
	app.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	for i := app.root.Len() - 1; i >= 0; i-- {
		app.patcher.Release(app.root.Child(i))
		app.root.RemoveChild(i)
	}
	app.rendered = nil
}

// State returns the state as of the last completed drain.
func (app *App) State() State {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.state
}
