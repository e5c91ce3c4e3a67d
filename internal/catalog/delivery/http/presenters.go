package http

import (
	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/internal/model"
	"ordering-kiosk/pkg/currency"
)

// --- Request DTOs ---

type listReq struct {
	Category      string   `form:"category"`
	Query         string   `form:"q"`
	Vegetarian    bool     `form:"vegetarian"`
	Vegan         bool     `form:"vegan"`
	GlutenFree    bool     `form:"gluten_free"`
	MaxPrice      *float64 `form:"max_price"`
	AvailableOnly bool     `form:"available_only"`
}

func (r listReq) validate() error {
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		return errNegativeMaxPrice
	}
	return nil
}

func (r listReq) toInput() catalog.ListInput {
	return catalog.ListInput{
		Criteria: catalog.FilterCriteria{
			Category:      r.Category,
			Query:         r.Query,
			Vegetarian:    r.Vegetarian,
			Vegan:         r.Vegan,
			GlutenFree:    r.GlutenFree,
			MaxPrice:      r.MaxPrice,
			AvailableOnly: r.AvailableOnly,
		},
	}
}

// ---

type searchReq struct {
	Query string `form:"q"`
}

func (r searchReq) validate() error { return nil }

// --- Response DTOs ---

type dietaryResp struct {
	Vegetarian   bool `json:"vegetarian"`
	Vegan        bool `json:"vegan"`
	GlutenFree   bool `json:"gluten_free"`
	ContainsNuts bool `json:"contains_nuts"`
	Spicy        bool `json:"spicy"`
}

type menuItemResp struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	PriceDisplay string      `json:"price_display"`
	Category     string      `json:"category"`
	Available    bool        `json:"available"`
	Dietary      dietaryResp `json:"dietary"`
	PrepMinutes  int         `json:"prep_minutes"`
	Calories     int         `json:"calories"`
	Ingredients  []string    `json:"ingredients"`
}

func newMenuItemResp(item model.MenuItem) menuItemResp {
	return menuItemResp{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		PriceDisplay: currency.Format(item.Price),
		Category:     string(item.Category),
		Available:    item.Available,
		Dietary: dietaryResp{
			Vegetarian:   item.Dietary.Vegetarian,
			Vegan:        item.Dietary.Vegan,
			GlutenFree:   item.Dietary.GlutenFree,
			ContainsNuts: item.Dietary.ContainsNuts,
			Spicy:        item.Dietary.Spicy,
		},
		PrepMinutes: item.PrepMinutes,
		Calories:    item.Calories,
		Ingredients: item.Ingredients,
	}
}

type listResp struct {
	Items []menuItemResp `json:"items"`
	Total int            `json:"total"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	items := make([]menuItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newMenuItemResp(item)
	}
	return listResp{Items: items, Total: out.Total}
}

type categoryResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(out catalog.CategoriesOutput) categoriesResp {
	cats := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		cats[i] = categoryResp{ID: c.ID, Name: c.Name, Count: c.Count}
	}
	return categoriesResp{Categories: cats}
}

type detailResp struct {
	Item menuItemResp `json:"item"`
}

func (h *handler) newDetailResp(out catalog.DetailOutput) detailResp {
	return detailResp{Item: newMenuItemResp(out.Item)}
}

type searchResp struct {
	Query string         `json:"query"`
	Items []menuItemResp `json:"items"`
	Total int            `json:"total"`
}

func (h *handler) newSearchResp(out catalog.SearchOutput) searchResp {
	items := make([]menuItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newMenuItemResp(item)
	}
	return searchResp{Query: out.Query, Items: items, Total: len(items)}
}
