package repository

import (
	"context"

	"ordering-kiosk/internal/model"
)

// Repository is the committed cart store: the single owner of line quantity
// and instructions. The controller layers transient interaction state on top
// and never caches these fields.
type Repository interface {
	AddItem(ctx context.Context, itemID string, quantity int) (model.CartLine, error)
	IncrementItem(ctx context.Context, itemID string) error
	DecrementItem(ctx context.Context, itemID string) error
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	RemoveItem(ctx context.Context, itemID string) error
	UpdateInstructions(ctx context.Context, itemID string, text string) error
	Clear(ctx context.Context) error

	// GetLine returns the zero line (ItemID == "") when the item is not in
	// the cart — absence is not an error.
	GetLine(ctx context.Context, itemID string) (model.CartLine, error)
	ListLines(ctx context.Context) ([]model.CartLine, error)
}
