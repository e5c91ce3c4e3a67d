package memory

import (
	"context"
	"sync"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/cart/repository"
	"ordering-kiosk/internal/model"
)

// implRepository is the in-memory committed cart for one session. Lines keep
// insertion order; quantity is clamped into the cart bounds on every write so
// the invariant holds no matter who calls.
type implRepository struct {
	mu    sync.RWMutex
	order []string
	lines map[string]*model.CartLine
}

// New creates an empty per-session cart store.
func New() repository.Repository {
	return &implRepository{
		lines: make(map[string]*model.CartLine),
	}
}

func clamp(q int) int {
	if q < cart.MinQuantity {
		return cart.MinQuantity
	}
	if q > cart.MaxQuantity {
		return cart.MaxQuantity
	}
	return q
}

// AddItem creates a line for the item, or merges quantities when the item is
// already in the cart.
func (r *implRepository) AddItem(ctx context.Context, itemID string, quantity int) (model.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if line, ok := r.lines[itemID]; ok {
		line.Quantity = clamp(line.Quantity + quantity)
		line.UpdatedAt = now
		return *line, nil
	}

	line := &model.CartLine{
		ItemID:    itemID,
		Quantity:  clamp(quantity),
		AddedAt:   now,
		UpdatedAt: now,
	}
	r.lines[itemID] = line
	r.order = append(r.order, itemID)
	return *line, nil
}

func (r *implRepository) IncrementItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[itemID]
	if !ok {
		return repository.ErrLineNotFound
	}
	line.Quantity = clamp(line.Quantity + 1)
	line.UpdatedAt = time.Now()
	return nil
}

func (r *implRepository) DecrementItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[itemID]
	if !ok {
		return repository.ErrLineNotFound
	}
	line.Quantity = clamp(line.Quantity - 1)
	line.UpdatedAt = time.Now()
	return nil
}

func (r *implRepository) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[itemID]
	if !ok {
		return repository.ErrLineNotFound
	}
	line.Quantity = clamp(quantity)
	line.UpdatedAt = time.Now()
	return nil
}

func (r *implRepository) RemoveItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lines[itemID]; !ok {
		return repository.ErrLineNotFound
	}
	delete(r.lines, itemID)
	for i, id := range r.order {
		if id == itemID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *implRepository) UpdateInstructions(ctx context.Context, itemID string, text string) error {
	if len([]rune(text)) > cart.MaxInstructionsLen {
		return repository.ErrInstructionsTooLong
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[itemID]
	if !ok {
		return repository.ErrLineNotFound
	}
	line.Instructions = text
	line.UpdatedAt = time.Now()
	return nil
}

// Clear drops every line at once.
func (r *implRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.lines = make(map[string]*model.CartLine)
	return nil
}

// GetLine returns the zero line when the item is not in the cart.
func (r *implRepository) GetLine(ctx context.Context, itemID string) (model.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	line, ok := r.lines[itemID]
	if !ok {
		return model.CartLine{}, nil
	}
	return *line, nil
}

// ListLines returns copies of the committed lines in insertion order.
func (r *implRepository) ListLines(ctx context.Context) ([]model.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.CartLine, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.lines[id])
	}
	return out, nil
}
