package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/operator"
)

// paymentEngine is the private implementation of PaymentEngine. One
// instance per session.
type paymentEngine struct {
	svc        OperatorService
	summary    SummaryFunc
	onComplete func(orderID string)
	l          log.Logger

	mu       sync.Mutex
	fields   map[string]*FieldState
	saveCard bool
	phase    FormPhase
	formErr  string
	orderID  string
	closed   bool
}

// NewPaymentEngine creates the per-session payment form engine. onComplete
// fires once when an order is accepted; the session uses it to clear the
// cart. nil is allowed for both summary and onComplete.
func NewPaymentEngine(svc OperatorService, summary SummaryFunc, onComplete func(orderID string), l log.Logger) *paymentEngine {
	return &paymentEngine{
		svc:        svc,
		summary:    summary,
		onComplete: onComplete,
		l:          l,
		fields:     emptyFields(),
		phase:      PhaseIdle,
	}
}

func emptyFields() map[string]*FieldState {
	m := make(map[string]*FieldState, len(paymentFieldOrder))
	for _, f := range paymentFieldOrder {
		m[f] = &FieldState{}
	}
	return m
}

// SetField updates one field. The card number is normalized on every
// change; a field that has been touched re-validates immediately.
func (e *paymentEngine) SetField(ctx context.Context, field, value string) (PaymentState, error) {
	if !knownPaymentField(field) {
		return PaymentState{}, ErrUnknownField
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhaseIdle {
		return e.stateLocked(), nil
	}

	f := e.fields[field]
	if field == FieldCardNumber {
		value = FormatCardNumber(value)
	}
	f.Value = value
	if f.Touched {
		f.Error = validatePaymentField(field, value, time.Now())
	}
	return e.stateLocked(), nil
}

// Touch marks the field as interacted with and validates it now. This is
// the blur event; from here on the field re-validates on every change.
func (e *paymentEngine) Touch(ctx context.Context, field string) (PaymentState, error) {
	if !knownPaymentField(field) {
		return PaymentState{}, ErrUnknownField
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhaseIdle {
		return e.stateLocked(), nil
	}

	f := e.fields[field]
	f.Touched = true
	f.Error = validatePaymentField(field, f.Value, time.Now())
	return e.stateLocked(), nil
}

func (e *paymentEngine) SetSaveCard(ctx context.Context, save bool) (PaymentState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhaseIdle {
		return e.stateLocked(), nil
	}
	e.saveCard = save
	return e.stateLocked(), nil
}

// Submit marks every field touched, runs the full validator set and calls
// the boundary only when all of them pass. The payload carries the derived
// card type and the last four digits; the full number and the CVV never
// leave the engine.
func (e *paymentEngine) Submit(ctx context.Context) (PaymentState, error) {
	e.mu.Lock()
	if e.closed || e.phase != PhaseIdle {
		st := e.stateLocked()
		e.mu.Unlock()
		return st, nil
	}

	now := time.Now()
	valid := true
	for _, name := range paymentFieldOrder {
		f := e.fields[name]
		f.Touched = true
		f.Error = validatePaymentField(name, f.Value, now)
		if f.Error != "" {
			valid = false
		}
	}
	if !valid {
		st := e.stateLocked()
		e.mu.Unlock()
		return st, nil
	}

	e.phase = PhaseSubmitting
	e.formErr = ""
	payment := e.paymentDataLocked()
	e.mu.Unlock()

	data := map[string]interface{}{
		"payment":           payment,
		"client_request_id": uuid.NewString(),
	}
	if e.summary != nil {
		summary, err := e.summary(ctx)
		if err != nil {
			e.l.Errorf(ctx, "payment engine: order summary: %v", err)
			return e.failSubmit("Submission failed. Please try again."), nil
		}
		data["order"] = summary
	}

	resp, err := e.svc.CreateDataEntry(ctx, operator.CreateDataEntryRequest{
		Data:      data,
		EntryType: EntryTypeOrder,
	})
	if err != nil {
		e.l.Errorf(ctx, "payment engine: CreateDataEntry: %v", err)
		return e.failSubmit(boundaryMessage(err)), nil
	}

	e.mu.Lock()
	if e.closed {
		st := e.stateLocked()
		e.mu.Unlock()
		return st, nil
	}
	e.phase = PhaseSucceeded
	e.orderID = resp.EntryID
	e.fields = emptyFields()
	e.saveCard = false
	st := e.stateLocked()
	cb := e.onComplete
	e.mu.Unlock()

	if cb != nil {
		cb(resp.EntryID)
	}
	return st, nil
}

// Reset clears the form. Available from Idle and from the success screen;
// refused only while a submission is in flight.
func (e *paymentEngine) Reset(ctx context.Context) (PaymentState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase == PhaseSubmitting {
		return e.stateLocked(), nil
	}
	e.fields = emptyFields()
	e.saveCard = false
	e.phase = PhaseIdle
	e.formErr = ""
	e.orderID = ""
	return e.stateLocked(), nil
}

func (e *paymentEngine) State(ctx context.Context) PaymentState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *paymentEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// failSubmit returns the form to Idle with a form-level error, keeping the
// draft intact for correction.
func (e *paymentEngine) failSubmit(msg string) PaymentState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.stateLocked()
	}
	e.phase = PhaseIdle
	e.formErr = msg
	return e.stateLocked()
}

// stateLocked renders the form. The card type is re-derived from the card
// number on every call rather than cached. Callers must hold e.mu.
func (e *paymentEngine) stateLocked() PaymentState {
	fields := make(map[string]FieldState, len(e.fields))
	canSubmit := e.phase == PhaseIdle
	for name, f := range e.fields {
		fields[name] = *f
		if f.Touched && f.Error != "" {
			canSubmit = false
		}
	}
	return PaymentState{
		Fields:    fields,
		CardType:  DetectCardType(e.fields[FieldCardNumber].Value),
		SaveCard:  e.saveCard,
		Phase:     e.phase,
		FormError: e.formErr,
		CanSubmit: canSubmit,
		OrderID:   e.orderID,
	}
}

// paymentDataLocked assembles the payment block of the order payload.
// Callers must hold e.mu.
func (e *paymentEngine) paymentDataLocked() map[string]interface{} {
	number := digitsOnly(e.fields[FieldCardNumber].Value)
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return map[string]interface{}{
		"cardholder":   strings.TrimSpace(e.fields[FieldCardName].Value),
		"card_type":    string(DetectCardType(number)),
		"card_last4":   last4,
		"expiry_month": strings.TrimSpace(e.fields[FieldExpiryMonth].Value),
		"expiry_year":  strings.TrimSpace(e.fields[FieldExpiryYear].Value),
		"billing": map[string]interface{}{
			"address_line1": strings.TrimSpace(e.fields[FieldAddressLine1].Value),
			"address_line2": strings.TrimSpace(e.fields[FieldAddressLine2].Value),
			"city":          strings.TrimSpace(e.fields[FieldCity].Value),
			"state":         strings.TrimSpace(e.fields[FieldState].Value),
			"zip":           strings.TrimSpace(e.fields[FieldZip].Value),
		},
		"save_card": e.saveCard,
	}
}
