// Package watcher reloads form definitions when they change on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce absorbs the burst of events editors emit on a single save.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer runs only the last of several closely spaced callbacks.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
	gen   uint64
}

// NewDebouncer returns a Debouncer. A zero wait selects DefaultDebounce.
func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &Debouncer{wait: wait}
}

// Trigger (re)arms the timer with fn.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		// A timer that already fired cannot be stopped; the generation
		// check drops its callback if it has been superseded.
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Wait returns the debounce window.
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}
