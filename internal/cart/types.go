package cart

import (
	"context"
	"time"

	"ordering-kiosk/internal/model"
)

// LineState is the per-line interaction state shown next to each cart row.
type LineState string

const (
	LineIdle                LineState = "idle"
	LineUpdating            LineState = "updating"             // a quantity change is settling
	LineConfirmingRemoval   LineState = "confirming_removal"   // remove pressed, awaiting confirm/cancel
	LineEditingInstructions LineState = "editing_instructions" // instructions drawer open
)

// Quantity and instruction bounds. These are invariants of the cart, not
// configuration.
const (
	MinQuantity        = 1
	MaxQuantity        = 99
	MaxInstructionsLen = 200
)

// DefaultSettleDelay is how long a line stays in Updating after a quantity
// mutation before returning to Idle.
const DefaultSettleDelay = 400 * time.Millisecond

// Options are the cart controller behavior toggles surfaced through the
// kiosk config endpoint.
type Options struct {
	SettleDelay                time.Duration
	RequireRemovalConfirmation bool
}

// DefaultOptions returns the documented defaults: 400ms settle, two-step
// removal on.
func DefaultOptions() Options {
	return Options{
		SettleDelay:                DefaultSettleDelay,
		RequireRemovalConfirmation: true,
	}
}

// ItemResolver looks up menu items for cart lines. A zero MenuItem reports
// an unknown ID; implementations follow the catalog repository's
// miss-is-not-an-error convention.
type ItemResolver interface {
	ResolveItem(ctx context.Context, id string) (model.MenuItem, error)
}

// Line is one row of the cart view: the committed store line joined with the
// resolved item and the controller's transient state. LineTotal is always
// recomputed from unit price × committed quantity, never stored.
type Line struct {
	Item         model.MenuItem
	Quantity     int
	Instructions string
	State        LineState
	Draft        string // instructions draft, meaningful while editing
	LineTotal    float64
	AddedAt      time.Time
	UpdatedAt    time.Time
}

// Snapshot is the whole-cart view derived fresh on every read.
type Snapshot struct {
	Lines     []Line
	Subtotal  float64
	ItemCount int // total units across lines
}
