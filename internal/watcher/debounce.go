package watcher

import (
	"sync"
	"time"
)

// debouncer coalesces rapid-fire events per path. The first event for a path
// schedules a fire after the window; further events within the window reset
// the timer instead of scheduling another fire. This keeps a file from being
// processed mid-write.
type debouncer struct {
	window time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger registers an event for path. fire runs once the window elapses with
// no further events for that path.
//
// Each event replaces the path's timer rather than resetting it: a reset
// timer that has already expired still runs its old callback, which would
// fire a burst twice. The callback only fires if it is still the current
// registration for its path.
func (d *debouncer) Trigger(path string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if prev, ok := d.timers[path]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.closed || d.timers[path] != timer {
			d.mu.Unlock()
			return
		}
		delete(d.timers, path)
		d.mu.Unlock()
		fire()
	})
	d.timers[path] = timer
}

// Close abandons all pending timers. State is only mutated at fire time, so
// abandoning a timer cannot corrupt ledger or profile state.
func (d *debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for path, timer := range d.timers {
		timer.Stop()
		delete(d.timers, path)
	}
}

// pendingCount returns the number of paths with an unfired timer.
func (d *debouncer) pendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}
