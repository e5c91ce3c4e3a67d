package usecase

import (
	"context"

	"ordering-kiosk/internal/cart"
)

// Add puts an item in the cart or merges with its existing line. Unknown and
// unavailable items are rejected; a non-positive quantity means one unit.
func (ctl *implController) Add(ctx context.Context, itemID string, quantity int) error {
	item, err := ctl.resolve.ResolveItem(ctx, itemID)
	if err != nil {
		ctl.l.Errorf(ctx, "cart controller: ResolveItem: %v", err)
		return err
	}
	if item.ID == "" {
		return cart.ErrUnknownItem
	}
	if !item.Available {
		return cart.ErrItemUnavailable
	}

	if quantity <= 0 {
		quantity = 1
	}
	quantity = clampQuantity(quantity)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	if _, err := ctl.store.AddItem(ctx, itemID, quantity); err != nil {
		ctl.l.Errorf(ctx, "cart controller: AddItem: %v", err)
		return mapStoreErr(err)
	}
	ctl.metaFor(itemID)
	return nil
}

// Increment raises the committed quantity by one. Silent no-op while the
// line is Updating or already at the upper bound; the matching controls are
// disabled in the UI, so refusal is not an error.
func (ctl *implController) Increment(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	line, err := ctl.store.GetLine(ctx, itemID)
	if err != nil {
		ctl.l.Errorf(ctx, "cart controller: GetLine: %v", err)
		return mapStoreErr(err)
	}
	if line.ItemID == "" {
		return cart.ErrLineNotFound
	}

	m := ctl.metaFor(itemID)
	if m.state == cart.LineUpdating {
		return nil
	}
	if line.Quantity >= cart.MaxQuantity {
		return nil
	}

	if err := ctl.store.IncrementItem(ctx, itemID); err != nil {
		ctl.l.Errorf(ctx, "cart controller: IncrementItem: %v", err)
		return mapStoreErr(err)
	}
	ctl.beginSettleLocked(itemID, m)
	return nil
}

// Decrement lowers the committed quantity by one, refusing silently at the
// lower bound so a line can never reach zero through this path.
func (ctl *implController) Decrement(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	line, err := ctl.store.GetLine(ctx, itemID)
	if err != nil {
		ctl.l.Errorf(ctx, "cart controller: GetLine: %v", err)
		return mapStoreErr(err)
	}
	if line.ItemID == "" {
		return cart.ErrLineNotFound
	}

	m := ctl.metaFor(itemID)
	if m.state == cart.LineUpdating {
		return nil
	}
	if line.Quantity <= cart.MinQuantity {
		return nil
	}

	if err := ctl.store.DecrementItem(ctx, itemID); err != nil {
		ctl.l.Errorf(ctx, "cart controller: DecrementItem: %v", err)
		return mapStoreErr(err)
	}
	ctl.beginSettleLocked(itemID, m)
	return nil
}

// SetQuantity clamps the requested quantity into range before comparing it
// with the committed value; setting the current quantity is an idempotent
// no-op with no store call and no Updating transition.
func (ctl *implController) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	quantity = clampQuantity(quantity)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	line, err := ctl.store.GetLine(ctx, itemID)
	if err != nil {
		ctl.l.Errorf(ctx, "cart controller: GetLine: %v", err)
		return mapStoreErr(err)
	}
	if line.ItemID == "" {
		return cart.ErrLineNotFound
	}

	m := ctl.metaFor(itemID)
	if m.state == cart.LineUpdating {
		return nil
	}
	if quantity == line.Quantity {
		return nil
	}

	if err := ctl.store.UpdateQuantity(ctx, itemID, quantity); err != nil {
		ctl.l.Errorf(ctx, "cart controller: UpdateQuantity: %v", err)
		return mapStoreErr(err)
	}
	ctl.beginSettleLocked(itemID, m)
	return nil
}
