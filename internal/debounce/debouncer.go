// Package debounce delays a task until its caller has been quiet for a while.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuiescence is the idle period after which a search is submitted.
const DefaultQuiescence = 500 * time.Millisecond

// Debouncer holds at most one pending task. Scheduling a new task replaces
// the pending one, so only the last task of a burst runs.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuiescence
	}
	return &Debouncer{delay: delay}
}

// Schedule cancels any pending task and arranges for fn to run after the
// quiescent period. It returns false once the debouncer is stopped.
func (d *Debouncer) Schedule(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.cancelLocked()

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that already fired cannot be stopped; the generation check
		// keeps a replaced task from running.
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
	return true
}

// Cancel drops the pending task, reporting whether there was one.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cancelLocked()
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

// Stop cancels the pending task and rejects further scheduling.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}
