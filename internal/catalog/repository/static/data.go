package static

import "ordering-kiosk/internal/model"

// DefaultMenu is the demo restaurant menu served by the kiosk. IDs are
// stable; the cart and scripts reference them, so never renumber.
func DefaultMenu() []model.MenuItem {
	return []model.MenuItem{
		// Appetizers
		{
			ID: "app-001", Name: "Crispy Spring Rolls",
			Description: "Golden vegetable rolls served with sweet chili dip",
			Price:       6.50, Category: model.CategoryAppetizer, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, Vegan: true},
			PrepMinutes: 10, Calories: 320,
			Ingredients: []string{"rice paper", "cabbage", "carrot", "glass noodles", "scallion"},
		},
		{
			ID: "app-002", Name: "Garlic Parmesan Wings",
			Description: "Crispy wings tossed in roasted garlic and parmesan",
			Price:       9.75, Category: model.CategoryAppetizer, Available: true,
			Dietary:     model.Dietary{GlutenFree: true},
			PrepMinutes: 15, Calories: 540,
			Ingredients: []string{"chicken wings", "garlic", "parmesan", "butter", "parsley"},
		},
		{
			ID: "app-003", Name: "Burrata & Heirloom Tomato",
			Description: "Creamy burrata, basil oil, balsamic glaze",
			Price:       11.00, Category: model.CategoryAppetizer, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, GlutenFree: true},
			PrepMinutes: 8, Calories: 380,
			Ingredients: []string{"burrata", "heirloom tomato", "basil", "balsamic vinegar", "olive oil"},
		},
		{
			ID: "app-004", Name: "Spicy Tuna Crispy Rice",
			Description: "Seared sushi rice cakes topped with spicy tuna",
			Price:       12.50, Category: model.CategoryAppetizer, Available: false,
			Dietary:     model.Dietary{Spicy: true},
			PrepMinutes: 12, Calories: 410,
			Ingredients: []string{"tuna", "sushi rice", "sriracha", "mayonnaise", "jalapeno"},
		},
		// Main courses
		{
			ID: "main-001", Name: "Grilled Atlantic Salmon",
			Description: "Salmon fillet, lemon butter, charred asparagus",
			Price:       18.00, Category: model.CategoryMain, Available: true,
			Dietary:     model.Dietary{GlutenFree: true},
			PrepMinutes: 20, Calories: 620,
			Ingredients: []string{"salmon", "lemon", "butter", "asparagus", "sea salt"},
		},
		{
			ID: "main-002", Name: "Wild Mushroom Risotto",
			Description: "Creamy arborio rice with roasted wild mushrooms",
			Price:       14.25, Category: model.CategoryMain, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, GlutenFree: true},
			PrepMinutes: 25, Calories: 580,
			Ingredients: []string{"arborio rice", "mushroom", "parmesan", "white wine", "shallot"},
		},
		{
			ID: "main-003", Name: "Smash Burger Deluxe",
			Description: "Double smashed patties, cheddar, house sauce, brioche",
			Price:       13.50, Category: model.CategoryMain, Available: true,
			Dietary:     model.Dietary{},
			PrepMinutes: 15, Calories: 890,
			Ingredients: []string{"beef", "cheddar", "brioche bun", "pickle", "onion", "house sauce"},
		},
		{
			ID: "main-004", Name: "Thai Green Curry",
			Description: "Coconut green curry with seasonal vegetables and jasmine rice",
			Price:       15.00, Category: model.CategoryMain, Available: true,
			Dietary:     model.Dietary{Vegan: true, Vegetarian: true, GlutenFree: true, Spicy: true},
			PrepMinutes: 18, Calories: 640,
			Ingredients: []string{"coconut milk", "green curry paste", "bamboo shoots", "thai basil", "jasmine rice"},
		},
		{
			ID: "main-005", Name: "Pappardelle Bolognese",
			Description: "Slow-braised beef ragu over fresh pappardelle",
			Price:       16.75, Category: model.CategoryMain, Available: false,
			Dietary:     model.Dietary{},
			PrepMinutes: 22, Calories: 760,
			Ingredients: []string{"pappardelle", "beef", "tomato", "red wine", "parmesan"},
		},
		// Desserts
		{
			ID: "des-001", Name: "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center",
			Price:       7.75, Category: model.CategoryDessert, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, ContainsNuts: true},
			PrepMinutes: 14, Calories: 510,
			Ingredients: []string{"dark chocolate", "flour", "egg", "hazelnut", "vanilla ice cream"},
		},
		{
			ID: "des-002", Name: "Lemon Basque Cheesecake",
			Description: "Burnt-top cheesecake with lemon curd",
			Price:       8.25, Category: model.CategoryDessert, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, GlutenFree: true},
			PrepMinutes: 10, Calories: 460,
			Ingredients: []string{"cream cheese", "egg", "lemon", "cream", "sugar"},
		},
		{
			ID: "des-003", Name: "Mango Sticky Rice",
			Description: "Sweet coconut rice with ripe mango",
			Price:       6.95, Category: model.CategoryDessert, Available: true,
			Dietary:     model.Dietary{Vegan: true, Vegetarian: true, GlutenFree: true},
			PrepMinutes: 8, Calories: 390,
			Ingredients: []string{"sticky rice", "mango", "coconut milk", "sesame"},
		},
		// Beverages
		{
			ID: "bev-001", Name: "Fresh Lemonade",
			Description: "House-squeezed, lightly sweetened",
			Price:       3.50, Category: model.CategoryBeverage, Available: true,
			Dietary:     model.Dietary{Vegan: true, Vegetarian: true, GlutenFree: true},
			PrepMinutes: 3, Calories: 120,
			Ingredients: []string{"lemon", "cane sugar", "mint"},
		},
		{
			ID: "bev-002", Name: "Cold Brew Coffee",
			Description: "Slow-steeped 18 hours, served over ice",
			Price:       4.25, Category: model.CategoryBeverage, Available: true,
			Dietary:     model.Dietary{Vegan: true, Vegetarian: true, GlutenFree: true},
			PrepMinutes: 2, Calories: 15,
			Ingredients: []string{"arabica coffee", "filtered water"},
		},
		{
			ID: "bev-003", Name: "Thai Iced Tea",
			Description: "Spiced black tea with condensed milk",
			Price:       4.50, Category: model.CategoryBeverage, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, GlutenFree: true},
			PrepMinutes: 4, Calories: 220,
			Ingredients: []string{"black tea", "condensed milk", "star anise", "cardamom"},
		},
		{
			ID: "bev-004", Name: "Sparkling Yuzu Soda",
			Description: "Japanese citrus, soda water, a little honey",
			Price:       4.75, Category: model.CategoryBeverage, Available: true,
			Dietary:     model.Dietary{Vegetarian: true, GlutenFree: true},
			PrepMinutes: 3, Calories: 140,
			Ingredients: []string{"yuzu", "soda water", "honey"},
		},
	}
}
