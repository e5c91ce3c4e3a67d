package checkout

import "context"

// DataEntryEngine drives the generic data-entry form. Setters mutate the
// draft freely; validation runs only at submit time, first failure wins.
// Setters are silent no-ops outside the Idle phase, mirroring inputs that
// are disabled while a submission is in flight.
type DataEntryEngine interface {
	SetEntryType(ctx context.Context, value string) (DataEntryState, error)
	SetTitle(ctx context.Context, value string) (DataEntryState, error)
	SetDescription(ctx context.Context, value string) (DataEntryState, error)
	SetQuantity(ctx context.Context, value int) (DataEntryState, error)
	SetPriority(ctx context.Context, value string) (DataEntryState, error)
	SetNotes(ctx context.Context, value string) (DataEntryState, error)

	// Submit validates the draft and, only when every check passes, calls
	// the remote boundary. Validation failures and remote failures both
	// land in the returned state's FormError, never in the error return.
	Submit(ctx context.Context) (DataEntryState, error)

	// Reset returns the draft to its defaults. No-op while the success
	// indicator is displayed or a submission is in flight.
	Reset(ctx context.Context) (DataEntryState, error)

	State(ctx context.Context) DataEntryState
	Close()
}

// PaymentEngine drives the payment form. Each field validates on blur
// (Touch) and, once touched, on every later change.
type PaymentEngine interface {
	// SetField updates one field's value. The card number field strips
	// non-digits, caps at 16 and reformats for display on every change.
	SetField(ctx context.Context, field, value string) (PaymentState, error)

	// Touch marks a field as interacted with and validates it now.
	Touch(ctx context.Context, field string) (PaymentState, error)

	SetSaveCard(ctx context.Context, save bool) (PaymentState, error)

	// Submit marks every field touched, runs the full validator set and
	// calls the remote boundary only if all of them pass.
	Submit(ctx context.Context) (PaymentState, error)

	// Reset clears the form. Available from Idle and Succeeded.
	Reset(ctx context.Context) (PaymentState, error)

	State(ctx context.Context) PaymentState
	Close()
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Entry lifecycle pass-through
	ListEntries(ctx context.Context, input ListEntriesInput) (ListEntriesOutput, error)
	GetEntry(ctx context.Context, id string) (EntryOutput, error)
	SubmitEntry(ctx context.Context, id string) (SubmitEntryOutput, error)
}
