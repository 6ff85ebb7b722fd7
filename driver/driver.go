package driver

import (
	"github.com/gowade/vex/vdom"
)

var (
	domBackend vdom.Backend
	scheduler  Scheduler
)

// Backend returns the registered display backend.
func Backend() vdom.Backend {
	if domBackend == nil {
		panic("DOM backend has not been set.")
	}

	return domBackend
}

func SetBackend(b vdom.Backend) {
	domBackend = b
}

// Sched returns the registered refresh-tick scheduler.
func Sched() Scheduler {
	if scheduler == nil {
		panic("Scheduler has not been set.")
	}

	return scheduler
}

func SetScheduler(s Scheduler) {
	scheduler = s
}
