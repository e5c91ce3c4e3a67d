package usecase

import (
	"context"

	"ordering-kiosk/internal/cart"
)

// Remove starts removal of a line. When confirmation is required the line
// only moves to ConfirmingRemoval and the store stays untouched until
// ConfirmRemove; otherwise the line is removed immediately.
func (ctl *implController) Remove(ctx context.Context, itemID string) error {
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
	if m.state == cart.LineUpdating || m.state == cart.LineConfirmingRemoval {
		return nil
	}

	if !ctl.opts.RequireRemovalConfirmation {
		return ctl.removeLineLocked(ctx, itemID, m)
	}

	m.state = cart.LineConfirmingRemoval
	return nil
}

// ConfirmRemove completes a pending two-step removal. A line that is not
// awaiting confirmation is left alone.
func (ctl *implController) ConfirmRemove(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	m, ok := ctl.meta[itemID]
	if !ok || m.state != cart.LineConfirmingRemoval {
		return nil
	}
	return ctl.removeLineLocked(ctx, itemID, m)
}

// CancelRemove backs out of a pending removal with zero store mutations.
func (ctl *implController) CancelRemove(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	m, ok := ctl.meta[itemID]
	if !ok || m.state != cart.LineConfirmingRemoval {
		return nil
	}
	m.state = cart.LineIdle
	return nil
}

// Clear empties the whole cart, cancelling whatever per-line interaction
// was in flight. Used when a placed order has consumed the lines.
func (ctl *implController) Clear(ctx context.Context) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	for _, m := range ctl.meta {
		if m.timer != nil {
			m.timer.Stop()
			m.timer = nil
		}
	}
	ctl.meta = make(map[string]*lineMeta)

	if err := ctl.store.Clear(ctx); err != nil {
		ctl.l.Errorf(ctx, "cart controller: Clear: %v", err)
		return mapStoreErr(err)
	}
	return nil
}

// removeLineLocked deletes the committed line and its transient state.
// Callers must hold ctl.mu.
func (ctl *implController) removeLineLocked(ctx context.Context, itemID string, m *lineMeta) error {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if err := ctl.store.RemoveItem(ctx, itemID); err != nil {
		ctl.l.Errorf(ctx, "cart controller: RemoveItem: %v", err)
		return mapStoreErr(err)
	}
	delete(ctl.meta, itemID)
	return nil
}
