package catalog

import (
	"strings"

	"ordering-kiosk/internal/model"
)

// Filter applies every present criterion as an AND condition over items.
// Absent criteria match vacuously, so the zero FilterCriteria returns every
// item. Input order is preserved and the input slice is never mutated, which
// makes the function idempotent: Filter(Filter(xs, c), c) == Filter(xs, c).
func Filter(items []model.MenuItem, c FilterCriteria) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if matches(item, c) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item model.MenuItem, c FilterCriteria) bool {
	if c.Category != "" && c.Category != "all" && string(item.Category) != c.Category {
		return false
	}
	if c.Query != "" && !matchesQuery(item, c.Query) {
		return false
	}
	if c.Vegetarian && !item.Dietary.Vegetarian {
		return false
	}
	if c.Vegan && !item.Dietary.Vegan {
		return false
	}
	if c.GlutenFree && !item.Dietary.GlutenFree {
		return false
	}
	if c.MaxPrice != nil && item.Price > *c.MaxPrice {
		return false
	}
	if c.AvailableOnly && !item.Available {
		return false
	}
	return true
}

// matchesQuery reports whether q case-insensitively matches the item name,
// description, or any single ingredient.
func matchesQuery(item model.MenuItem, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, ing := range item.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// SearchItems matches q against item name and description only. Ingredients
// are searchable through the page filter but not through this standalone
// search; the two surfaces intentionally differ.
func SearchItems(items []model.MenuItem, q string) []model.MenuItem {
	q = strings.ToLower(q)
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
		}
	}
	return out
}
