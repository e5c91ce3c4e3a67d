package cart

import "context"

// Controller drives the per-line state machine over the committed cart
// store. One Controller belongs to one session; methods are safe for
// concurrent use within it.
//
// Refusals at the quantity bounds and operations that do not apply to the
// line's current state are silent no-ops, mirroring controls that are simply
// disabled in the UI. Errors are reserved for unknown items and lines.
//
//go:generate mockery --name Controller
type Controller interface {
	// Quantity
	Add(ctx context.Context, itemID string, quantity int) error
	Increment(ctx context.Context, itemID string) error
	Decrement(ctx context.Context, itemID string) error
	SetQuantity(ctx context.Context, itemID string, quantity int) error

	// Removal
	Remove(ctx context.Context, itemID string) error
	ConfirmRemove(ctx context.Context, itemID string) error
	CancelRemove(ctx context.Context, itemID string) error

	// Special instructions
	BeginInstructions(ctx context.Context, itemID string) error
	InputInstructions(ctx context.Context, itemID string, text string) error
	SaveInstructions(ctx context.Context, itemID string) error
	CancelInstructions(ctx context.Context, itemID string) error

	// Clear empties the whole cart at once, used when a placed order has
	// consumed the lines. No per-line confirmation applies.
	Clear(ctx context.Context) error

	// Views and lifecycle
	Snapshot(ctx context.Context) (Snapshot, error)
	Config() Options
	Close()
}
