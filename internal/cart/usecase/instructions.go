package usecase

import (
	"context"

	"ordering-kiosk/internal/cart"
)

// BeginInstructions opens the draft editor seeded from the committed text.
// Only an Idle line can enter editing.
func (ctl *implController) BeginInstructions(ctx context.Context, itemID string) error {
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
	if m.state != cart.LineIdle {
		return nil
	}
	m.state = cart.LineEditingInstructions
	m.draft = line.Instructions
	return nil
}

// InputInstructions replaces the local draft. Text beyond the cap is refused
// at this boundary and the draft keeps its previous value; the committed
// instructions are untouched either way.
func (ctl *implController) InputInstructions(ctx context.Context, itemID string, text string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	m, ok := ctl.meta[itemID]
	if !ok || m.state != cart.LineEditingInstructions {
		return nil
	}

	if len([]rune(text)) > cart.MaxInstructionsLen {
		return cart.ErrInstructionsTooLong
	}
	m.draft = text
	return nil
}

// SaveInstructions commits the draft to the store and closes the editor.
func (ctl *implController) SaveInstructions(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	m, ok := ctl.meta[itemID]
	if !ok || m.state != cart.LineEditingInstructions {
		return nil
	}

	if err := ctl.store.UpdateInstructions(ctx, itemID, m.draft); err != nil {
		ctl.l.Errorf(ctx, "cart controller: UpdateInstructions: %v", err)
		return mapStoreErr(err)
	}
	m.state = cart.LineIdle
	m.draft = ""
	return nil
}

// CancelInstructions discards the draft, reverting the editor to the last
// committed value, and closes the editor without touching the store.
func (ctl *implController) CancelInstructions(ctx context.Context, itemID string) error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.closed {
		return nil
	}

	m, ok := ctl.meta[itemID]
	if !ok || m.state != cart.LineEditingInstructions {
		return nil
	}
	m.state = cart.LineIdle
	m.draft = ""
	return nil
}
