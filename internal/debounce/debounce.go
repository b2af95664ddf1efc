// Package debounce collapses bursts of triggers into a single callback
// after a quiet period. The TUI gets the same behavior from timer
// messages inside its event loop; this package serves goroutine-based
// callers like watch mode.
package debounce

import (
	"sync"
	"time"
)

// Debouncer arms a timer on every Schedule call, replacing any timer
// already pending, so only the last trigger of a burst fires. Each
// Schedule bumps a generation; a fired timer whose generation is stale
// does nothing, which closes the race between Stop and an already
// expired timer.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	pending func()
}

func New(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Schedule runs fn once the quiet period passes without another
// Schedule, Stop, or Flush call. fn runs on the timer goroutine.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.pending = nil
		d.mu.Unlock()

		fn()
	})
}

// Stop cancels the pending callback, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs the pending callback now instead of waiting out the quiet
// period. No-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
