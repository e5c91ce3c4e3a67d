package usecase

import (
	"sync"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/cart/repository"
	"ordering-kiosk/pkg/log"
)

// lineMeta is the transient interaction state for one line. Committed
// quantity and instructions stay in the store; only the state machine, the
// instructions draft and the settle timer live here.
type lineMeta struct {
	state cart.LineState
	draft string
	gen   uint64
	timer *time.Timer
}

// implController is the private implementation of cart.Controller. One
// instance per session.
type implController struct {
	store   repository.Repository
	resolve cart.ItemResolver
	opts    cart.Options
	l       log.Logger

	mu     sync.Mutex
	meta   map[string]*lineMeta
	closed bool
}

// NewController creates the per-session cart controller.
func NewController(store repository.Repository, resolve cart.ItemResolver, opts cart.Options, l log.Logger) *implController {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = cart.DefaultSettleDelay
	}
	return &implController{
		store:   store,
		resolve: resolve,
		opts:    opts,
		l:       l,
		meta:    make(map[string]*lineMeta),
	}
}

// Config returns the options the controller runs with.
func (ctl *implController) Config() cart.Options { return ctl.opts }

// Close cancels every pending settle timer and refuses all later operations.
// A timer callback that lost the race observes closed and leaves state alone.
func (ctl *implController) Close() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.closed = true
	for _, m := range ctl.meta {
		if m.timer != nil {
			m.timer.Stop()
			m.timer = nil
		}
	}
}

// metaFor returns the line's transient state, creating it Idle on first use.
// Callers must hold ctl.mu.
func (ctl *implController) metaFor(itemID string) *lineMeta {
	m, ok := ctl.meta[itemID]
	if !ok {
		m = &lineMeta{state: cart.LineIdle}
		ctl.meta[itemID] = m
	}
	return m
}

// beginSettleLocked moves the line into Updating and schedules the return to
// Idle one settle delay later. Callers must hold ctl.mu.
func (ctl *implController) beginSettleLocked(itemID string, m *lineMeta) {
	m.state = cart.LineUpdating
	if m.timer != nil {
		m.timer.Stop()
	}
	m.gen++
	gen := m.gen
	m.timer = time.AfterFunc(ctl.opts.SettleDelay, func() { ctl.settle(itemID, gen) })
}

// settle returns a line to Idle after the settle delay. Stale generations
// lost a race with a newer mutation or removal and do nothing.
func (ctl *implController) settle(itemID string, gen uint64) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return
	}
	m, ok := ctl.meta[itemID]
	if !ok || m.gen != gen || m.state != cart.LineUpdating {
		return
	}
	m.timer = nil
	m.state = cart.LineIdle
}
