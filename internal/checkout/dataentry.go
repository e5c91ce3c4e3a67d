package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/operator"
)

// dataEntryEngine is the private implementation of DataEntryEngine. One
// instance per session.
type dataEntryEngine struct {
	svc        OperatorService
	opts       Options
	onComplete func(entryID string)
	l          log.Logger

	mu      sync.Mutex
	draft   DataEntryDraft
	phase   FormPhase
	formErr string
	entryID string
	gen     uint64
	timer   *time.Timer
	closed  bool
}

// NewDataEntryEngine creates the per-session data-entry form engine.
// onComplete fires exactly once per successful submission, after the
// success indicator has been displayed; nil is allowed.
func NewDataEntryEngine(svc OperatorService, opts Options, onComplete func(entryID string), l log.Logger) *dataEntryEngine {
	if opts.SuccessDisplayDelay <= 0 {
		opts.SuccessDisplayDelay = DefaultSuccessDisplayDelay
	}
	return &dataEntryEngine{
		svc:        svc,
		opts:       opts,
		onComplete: onComplete,
		l:          l,
		draft:      DefaultDataEntryDraft(),
		phase:      PhaseIdle,
	}
}

func (e *dataEntryEngine) SetEntryType(ctx context.Context, value string) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.EntryType = value }), nil
}

func (e *dataEntryEngine) SetTitle(ctx context.Context, value string) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.Title = value }), nil
}

func (e *dataEntryEngine) SetDescription(ctx context.Context, value string) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.Description = value }), nil
}

func (e *dataEntryEngine) SetQuantity(ctx context.Context, value int) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.Quantity = value }), nil
}

func (e *dataEntryEngine) SetPriority(ctx context.Context, value string) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.Priority = value }), nil
}

func (e *dataEntryEngine) SetNotes(ctx context.Context, value string) (DataEntryState, error) {
	return e.mutate(func(d *DataEntryDraft) { d.Notes = value }), nil
}

// mutate applies a draft change when the form is editable. Outside Idle the
// inputs are disabled, so the change is silently dropped.
func (e *dataEntryEngine) mutate(fn func(d *DataEntryDraft)) DataEntryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseIdle && !e.closed {
		fn(&e.draft)
	}
	return e.stateLocked()
}

// Submit runs the checks in order; the first failure becomes the form error
// and no remote call is made. A passing draft goes to the operator service;
// success shows the indicator and arms the auto-reset, failure keeps the
// draft intact with the backend's message as the form error.
func (e *dataEntryEngine) Submit(ctx context.Context) (DataEntryState, error) {
	e.mu.Lock()
	if e.closed || e.phase != PhaseIdle {
		st := e.stateLocked()
		e.mu.Unlock()
		return st, nil
	}
	if msg := validateDataEntry(e.draft); msg != "" {
		e.formErr = msg
		st := e.stateLocked()
		e.mu.Unlock()
		return st, nil
	}

	e.phase = PhaseSubmitting
	e.formErr = ""
	draft := e.draft
	e.mu.Unlock()

	resp, err := e.svc.CreateDataEntry(ctx, operator.CreateDataEntryRequest{
		Data: map[string]interface{}{
			"title":             draft.Title,
			"description":       draft.Description,
			"quantity":          draft.Quantity,
			"priority":          draft.Priority,
			"notes":             draft.Notes,
			"client_request_id": uuid.NewString(),
		},
		EntryType: draft.EntryType,
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.stateLocked(), nil
	}
	if err != nil {
		e.l.Errorf(ctx, "data entry engine: CreateDataEntry: %v", err)
		e.phase = PhaseIdle
		e.formErr = boundaryMessage(err)
		return e.stateLocked(), nil
	}

	e.phase = PhaseSucceeded
	e.entryID = resp.EntryID
	e.scheduleResetLocked(resp.EntryID)
	return e.stateLocked(), nil
}

// Reset returns the draft to its defaults. Only acts while Idle; during the
// success display the auto-reset owns the transition, and during a
// submission the form is disabled.
func (e *dataEntryEngine) Reset(ctx context.Context) (DataEntryState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhaseIdle {
		return e.stateLocked(), nil
	}
	e.draft = DefaultDataEntryDraft()
	e.formErr = ""
	return e.stateLocked(), nil
}

func (e *dataEntryEngine) State(ctx context.Context) DataEntryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Close cancels the pending auto-reset. The completion callback never fires
// after Close.
func (e *dataEntryEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *dataEntryEngine) stateLocked() DataEntryState {
	return DataEntryState{
		Draft:     e.draft,
		Phase:     e.phase,
		FormError: e.formErr,
		EntryID:   e.entryID,
	}
}

// scheduleResetLocked arms the auto-reset that follows the success display.
// Callers must hold e.mu.
func (e *dataEntryEngine) scheduleResetLocked(entryID string) {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.gen++
	gen := e.gen
	e.timer = time.AfterFunc(e.opts.SuccessDisplayDelay, func() { e.finishSuccess(gen, entryID) })
}

// finishSuccess clears the draft once the success display ends and fires
// the completion callback outside the lock. A stale generation or a closed
// engine does nothing, so the callback cannot fire into a discarded session.
func (e *dataEntryEngine) finishSuccess(gen uint64, entryID string) {
	e.mu.Lock()
	if e.closed || gen != e.gen || e.phase != PhaseSucceeded {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	e.phase = PhaseIdle
	e.draft = DefaultDataEntryDraft()
	e.formErr = ""
	cb := e.onComplete
	e.mu.Unlock()

	if cb != nil {
		cb(entryID)
	}
}
