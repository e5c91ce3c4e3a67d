package static

import (
	"context"

	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/internal/catalog/repository"
	"ordering-kiosk/internal/model"
	"ordering-kiosk/pkg/log"
)

// categoryTabs fixes the order and display names of the category strip.
var categoryTabs = []struct {
	id   string
	name string
}{
	{"all", "All Items"},
	{string(model.CategoryAppetizer), "Appetizers"},
	{string(model.CategoryMain), "Main Courses"},
	{string(model.CategoryDessert), "Desserts"},
	{string(model.CategoryBeverage), "Beverages"},
}

type implRepository struct {
	items []model.MenuItem
	byID  map[string]int
	l     log.Logger
}

// New creates a read-only Repository over a fixed menu. The slice order is
// the stable display order every accessor preserves.
func New(items []model.MenuItem, l log.Logger) (repository.Repository, error) {
	if len(items) == 0 {
		return nil, repository.ErrEmptyMenu
	}

	byID := make(map[string]int, len(items))
	for i, item := range items {
		if _, ok := byID[item.ID]; ok {
			return nil, repository.ErrDuplicateItemID
		}
		byID[item.ID] = i
	}

	return &implRepository{items: items, byID: byID, l: l}, nil
}

// ListItems returns the menu, optionally narrowed to one category. The
// returned slice is always a copy so callers can never reorder the source.
func (r *implRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.MenuItem, error) {
	if opt.Category == "" || opt.Category == "all" {
		out := make([]model.MenuItem, len(r.items))
		copy(out, r.items)
		return out, nil
	}

	out := make([]model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if string(item.Category) == opt.Category {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetOneItem retrieves a single item by ID.
// Returns zero-value MenuItem (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.MenuItem, error) {
	i, ok := r.byID[opt.ID]
	if !ok {
		return model.MenuItem{}, nil
	}
	return r.items[i], nil
}

// Categories counts the menu in a single pass. The "all" tab always carries
// the full menu size.
func (r *implRepository) Categories(ctx context.Context) ([]catalog.CategoryCount, error) {
	counts := make(map[string]int, len(categoryTabs))
	for _, item := range r.items {
		counts[string(item.Category)]++
	}

	out := make([]catalog.CategoryCount, 0, len(categoryTabs))
	for _, tab := range categoryTabs {
		n := counts[tab.id]
		if tab.id == "all" {
			n = len(r.items)
		}
		out = append(out, catalog.CategoryCount{ID: tab.id, Name: tab.name, Count: n})
	}
	return out, nil
}
