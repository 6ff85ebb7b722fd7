package driver

import "time"

// Scheduler is the refresh-tick port: a cooperative single-shot timer
// firing at the platform's redraw cadence. The runtime loop requests a
// new tick after each one fires.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 17 * time.Millisecond

type frameScheduler struct {
	interval time.Duration
}

// NewFrameScheduler returns a wall-clock Scheduler for hosts without a
// native refresh signal.
func NewFrameScheduler(interval time.Duration) Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return frameScheduler{interval: interval}
}

func (s frameScheduler) Schedule(fn func()) (cancel func()) {
	t := time.AfterFunc(s.interval, fn)
	return func() { t.Stop() }
}

type task struct {
	fn func()
}

// ManualScheduler is a Scheduler pumped by hand, for tests and headless
// hosts. Tick runs everything scheduled before the call; callbacks
// scheduled while ticking run on the next Tick.
type ManualScheduler struct {
	pending []*task
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(fn func()) (cancel func()) {
	t := &task{fn: fn}
	s.pending = append(s.pending, t)
	return func() { t.fn = nil }
}

func (s *ManualScheduler) Tick() {
	tasks := s.pending
	s.pending = nil
	for _, t := range tasks {
		if t.fn != nil {
			t.fn()
		}
	}
}

// Pending reports how many callbacks are waiting for the next Tick.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if t.fn != nil {
			n++
		}
	}

	return n
}
