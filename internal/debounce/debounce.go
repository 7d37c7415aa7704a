// Package debounce delays an action until its input has been quiet for a
// fixed interval.
package debounce

import (
	"sync"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

// Debouncer runs the most recently triggered func once no trigger has arrived
// for the configured delay. Stop releases the timer; a stopped Debouncer
// ignores further triggers.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	seq     uint64
	stopped bool
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Delay() time.Duration {
	if d == nil {
		return 0
	}
	return d.delay
}

// Trigger (re)starts the quiet period and replaces the pending func.
func (d *Debouncer) Trigger(fn func()) {
	if d == nil || fn == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = fn
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	// A timer that already fired may still be waiting on mu; seq lets it see
	// that it has been superseded.
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Flush runs the pending func now, if any, and reports whether it ran.
func (d *Debouncer) Flush() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	fn := d.takeLocked()
	d.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending func without stopping the Debouncer.
func (d *Debouncer) Cancel() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.takeLocked()
	d.mu.Unlock()
}

// Stop cancels any pending func and releases the timer for good.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.takeLocked()
	d.stopped = true
	d.mu.Unlock()
}

func (d *Debouncer) Pending() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) Stopped() bool {
	if d == nil {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	fn := d.takeLocked()
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (d *Debouncer) takeLocked() func() {
	fn := d.pending
	d.pending = nil
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return fn
}
