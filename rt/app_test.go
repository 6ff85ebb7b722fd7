package rt_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gowade/vex/dom/gonet"
	"github.com/gowade/vex/driver"
	"github.com/gowade/vex/rt"
	"github.com/gowade/vex/vdom"
)

type model struct {
	count int
	seen  []rt.Message
}

type harness struct {
	backend *gonet.Backend
	sched   *driver.ManualScheduler
	root    gonet.Node
	app     *rt.App

	updateLog []rt.Message
	viewCalls int
}

func newHarness(t *testing.T, update rt.UpdateFn, view rt.ViewFn) *harness {
	t.Helper()

	h := &harness{
		backend: gonet.New(),
		sched:   driver.NewManualScheduler(),
	}
	h.root = h.backend.NewRootFragment()

	wrappedUpdate := func(s rt.State, msg rt.Message) rt.State {
		h.updateLog = append(h.updateLog, msg)
		return update(s, msg)
	}
	wrappedView := func(s rt.State) []vdom.Node {
		h.viewCalls++
		return view(s)
	}

	h.app = rt.StartWith(h.backend, h.sched, h.root, model{}, wrappedUpdate, wrappedView)
	return h
}

func countingUpdate(s rt.State, msg rt.Message) rt.State {
	m := s.(model)
	m.seen = append(append([]rt.Message{}, m.seen...), msg)
	if msg == "inc" {
		m.count++
	}

	return m
}

func countingView(s rt.State) []vdom.Node {
	m := s.(model)
	return []vdom.Node{
		vdom.H("div", vdom.Attributes{"class": "counter"},
			vdom.T(fmt.Sprint(m.count)),
		),
	}
}

func (h *harness) shown(t *testing.T) string {
	t.Helper()
	return h.root.Query("div.counter").Text()
}

func TestInitialMount(t *testing.T) {
	h := newHarness(t, countingUpdate, countingView)

	require.Equal(t, 1, h.viewCalls)
	require.Equal(t, 1, h.root.Len())
	require.Equal(t, "0", h.shown(t))
}

func TestCoalescedScheduling(t *testing.T) {
	h := newHarness(t, countingUpdate, countingView)

	for i := 0; i < 5; i++ {
		h.app.Enqueue("inc")
	}

	// five messages, one tick: one fold in enqueue order, one view call
	h.sched.Tick()
	require.Equal(t, []rt.Message{"inc", "inc", "inc", "inc", "inc"}, h.updateLog)
	require.Equal(t, 2, h.viewCalls)
	require.Equal(t, "5", h.shown(t))

	// an empty queue skips the render entirely
	h.sched.Tick()
	require.Equal(t, 2, h.viewCalls)

	// the loop keeps rescheduling itself
	require.Equal(t, 1, h.sched.Pending())
}

func TestMessageOrdering(t *testing.T) {
	h := newHarness(t, countingUpdate, countingView)

	h.app.Enqueue("a")
	h.app.Enqueue("b")
	h.app.Enqueue("c")
	h.sched.Tick()

	require.Equal(t, []rt.Message{"a", "b", "c"}, h.app.State().(model).seen)
}

func TestReentrantEnqueue(t *testing.T) {
	var h *harness
	update := func(s rt.State, msg rt.Message) rt.State {
		if msg == "first" {
			h.app.Enqueue("second")
		}

		return countingUpdate(s, msg)
	}
	h = newHarness(t, update, countingView)

	h.app.Enqueue("first")
	h.sched.Tick()
	// the reentrant message is deferred, never folded in the same pass
	require.Equal(t, []rt.Message{"first"}, h.app.State().(model).seen)

	h.sched.Tick()
	require.Equal(t, []rt.Message{"first", "second"}, h.app.State().(model).seen)
}

func TestEventHandlerToMessage(t *testing.T) {
	view := func(s rt.State) []vdom.Node {
		m := s.(model)
		return []vdom.Node{
			vdom.H("button", vdom.Attributes{
				"class": "inc",
				"onClick": func(vdom.Event) interface{} {
					return "inc"
				},
				"onBlur": func(vdom.Event) interface{} {
					return nil
				},
			}, vdom.T(fmt.Sprint(m.count))),
		}
	}
	h := newHarness(t, countingUpdate, view)

	btn := h.root.Child(0).(gonet.Node)
	btn.Fire("click", nil)
	btn.Fire("click", nil)
	h.sched.Tick()

	require.Equal(t, 2, h.app.State().(model).count)
	require.Equal(t, "2", h.root.Query("button.inc").Text())
	require.Equal(t, 2, h.backend.Registrations())

	// a nil handler result is the no-message sentinel; nothing reaches
	// the queue
	btn.Fire("blur", nil)
	h.sched.Tick()
	require.Equal(t, 2, h.app.State().(model).count)
	require.Equal(t, []rt.Message{"inc", "inc"}, h.updateLog)
}

func TestStateUnderFrameScheduler(t *testing.T) {
	backend := gonet.New()
	root := backend.NewRootFragment()

	app := rt.StartWith(backend, driver.NewFrameScheduler(time.Millisecond),
		root, model{}, countingUpdate, countingView)
	defer app.Stop()

	// State is read here while ticks drain on the scheduler goroutine
	for i := 0; i < 50; i++ {
		app.Enqueue("inc")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if app.State().(model).count == 50 {
			return
		}

		time.Sleep(time.Millisecond)
	}

	t.Fatalf("expected a count of 50, got %v", app.State().(model).count)
}

func TestStopUnmounts(t *testing.T) {
	view := func(s rt.State) []vdom.Node {
		return []vdom.Node{
			vdom.H("button", vdom.Attributes{
				"onClick": func(vdom.Event) interface{} { return "inc" },
			}),
		}
	}
	h := newHarness(t, countingUpdate, view)
	require.Equal(t, 1, h.backend.Registrations())

	h.app.Stop()
	require.Equal(t, 0, h.backend.Registrations())
	require.Equal(t, 0, h.root.Len())
	require.Equal(t, 0, h.sched.Pending())

	// enqueue after unmount is dropped; a stray tick does nothing
	h.app.Enqueue("inc")
	h.sched.Tick()
	require.Equal(t, 1, h.viewCalls)
	require.Equal(t, 0, h.app.State().(model).count)
}
