package model

// Category classifies menu items into the kiosk's tabs.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

// Dietary holds the dietary flags shown as badges on an item.
type Dietary struct {
	Vegetarian   bool
	Vegan        bool
	GlutenFree   bool
	ContainsNuts bool
	Spicy        bool
}

// MenuItem is one sellable item in the catalog. Items are immutable once
// loaded; every layer reads the same backing data.
type MenuItem struct {
	ID          string   // stable item identifier, e.g. "app-001"
	Name        string   // display name
	Description string   // one-line description shown on cards
	Price       float64  // USD, never negative
	Category    Category // one of the four kiosk tabs
	Available   bool     // unavailable items render greyed out
	Dietary     Dietary
	PrepMinutes int      // kitchen estimate shown on the detail page
	Calories    int
	Ingredients []string // ordered as listed on the detail page
}
