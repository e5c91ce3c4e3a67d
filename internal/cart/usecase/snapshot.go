package usecase

import (
	"context"

	"ordering-kiosk/internal/cart"
)

// Snapshot joins the committed store lines with the resolved menu items and
// the transient line states. Line totals and the subtotal are recomputed from
// unit price × committed quantity on every call; nothing here is cached.
func (ctl *implController) Snapshot(ctx context.Context) (cart.Snapshot, error) {
	lines, err := ctl.store.ListLines(ctx)
	if err != nil {
		ctl.l.Errorf(ctx, "cart controller: ListLines: %v", err)
		return cart.Snapshot{}, mapStoreErr(err)
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	snap := cart.Snapshot{Lines: make([]cart.Line, 0, len(lines))}
	for _, ln := range lines {
		item, err := ctl.resolve.ResolveItem(ctx, ln.ItemID)
		if err != nil {
			ctl.l.Errorf(ctx, "cart controller: ResolveItem: %v", err)
			return cart.Snapshot{}, err
		}
		if item.ID == "" {
			return cart.Snapshot{}, cart.ErrUnknownItem
		}

		// The draft is only visible while the editor is open.
		state, draft := cart.LineIdle, ""
		if m, ok := ctl.meta[ln.ItemID]; ok {
			state = m.state
			if state == cart.LineEditingInstructions {
				draft = m.draft
			}
		}

		total := item.Price * float64(ln.Quantity)
		snap.Lines = append(snap.Lines, cart.Line{
			Item:         item,
			Quantity:     ln.Quantity,
			Instructions: ln.Instructions,
			State:        state,
			Draft:        draft,
			LineTotal:    total,
			AddedAt:      ln.AddedAt,
			UpdatedAt:    ln.UpdatedAt,
		})
		snap.Subtotal += total
		snap.ItemCount += ln.Quantity
	}
	return snap, nil
}
