package search

import (
	"sync"
	"time"
)

// Defaults for the search box. Surfaced to the UI through the kiosk config
// endpoint; override per deployment via config.
const (
	DefaultDelay       = 300 * time.Millisecond
	DefaultPlaceholder = "Search the menu"
)

// Options are the search box behavior and presentation toggles.
type Options struct {
	Delay       time.Duration // quiescent window before a commit fires
	Placeholder string        // input placeholder text
	ShowClear   bool          // whether the clear control is rendered
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Delay:       DefaultDelay,
		Placeholder: DefaultPlaceholder,
		ShowClear:   true,
	}
}

// Debouncer turns a stream of keystrokes into committed queries. Each commit
// carries the most recent live value and fires only after the input has been
// quiet for one full delay window; a newer keystroke cancels and restarts the
// window from zero.
//
// At most one timer is pending at any time. A generation counter guards the
// timer callback, so a fire that lost a race with Input, Set, Clear or Close
// is a silent no-op.
type Debouncer struct {
	mu        sync.Mutex
	opts      Options
	live      string
	committed string
	timer     *time.Timer
	gen       uint64
	closed    bool
	emit      func(string)
}

// New creates a Debouncer. A zero Delay or empty Placeholder falls back to
// the defaults; start from DefaultOptions() to keep ShowClear on. The emit
// callback runs on the timer goroutine, outside the internal lock.
func New(opts Options, emit func(string)) *Debouncer {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	return &Debouncer{opts: opts, emit: emit}
}

// Input records a keystroke: the live value changes immediately and the
// commit window restarts from zero.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.live = value
	d.scheduleLocked()
}

// Set replaces the live value from outside the keystroke path, e.g. when the
// owning page resets the field. The pending commit, if any, is cancelled and
// nothing is emitted; the caller already knows the value it set.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.live = value
	d.cancelLocked()
}

// Clear empties the live value immediately. The committed empty string is
// delivered through the normal debounce channel rather than bypassing it, so
// consumers see a single well-ordered event.
func (d *Debouncer) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.live = ""
	d.scheduleLocked()
}

// Close cancels any pending commit and stops the Debouncer for good. No
// emission ever happens after Close returns; later calls are no-ops.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.cancelLocked()
}

// Live returns the current live value.
func (d *Debouncer) Live() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live
}

// Committed returns the last value delivered through the debounce channel.
func (d *Debouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// Pending reports whether a commit window is currently open.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Config returns the options the Debouncer runs with.
func (d *Debouncer) Config() Options {
	return d.opts
}

// scheduleLocked cancels any pending commit and opens a fresh window.
func (d *Debouncer) scheduleLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.opts.Delay, func() { d.fire(gen) })
}

// cancelLocked stops the pending commit without opening a new window.
func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// fire commits the live value. Stale generations lost a race with a newer
// Input/Set/Clear/Close and must do nothing.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	value := d.live
	d.committed = value
	emit := d.emit
	d.mu.Unlock()

	if emit != nil {
		emit(value)
	}
}
