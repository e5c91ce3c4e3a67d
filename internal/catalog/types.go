package catalog

import "ordering-kiosk/internal/model"

// FilterCriteria is the set of menu filters active on the kiosk page.
// Every present criterion is ANDed; zero values mean "don't filter on this",
// so the zero FilterCriteria matches the whole menu.
type FilterCriteria struct {
	Category      string   // "" or "all" matches any category
	Query         string   // case-insensitive substring match
	Vegetarian    bool     // only items flagged vegetarian
	Vegan         bool     // only items flagged vegan
	GlutenFree    bool     // only items flagged gluten free
	MaxPrice      *float64 // inclusive upper bound when set
	AvailableOnly bool     // hide 86'd items
}

// CategoryCount is one tab in the category strip. The "all" entry always
// counts the full menu, not the filtered view.
type CategoryCount struct {
	ID    string
	Name  string
	Count int
}

// --- UseCase Inputs ---

type ListInput struct {
	Criteria FilterCriteria
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []model.MenuItem
	Total int
}

type CategoriesOutput struct {
	Categories []CategoryCount
}

type DetailOutput struct {
	Item model.MenuItem
}

type SearchOutput struct {
	Query string
	Items []model.MenuItem
}
