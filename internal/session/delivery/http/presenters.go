package http

import (
	"time"

	"ordering-kiosk/internal/search"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/currency"
)

// --- Request DTOs ---

type searchValueReq struct {
	Value string `json:"value"`
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
	TTLSeconds int       `json:"ttl_seconds"`
}

func (h *handler) newSessionResp(s *session.Session) sessionResp {
	return sessionResp{
		SessionID:  s.ID,
		CreatedAt:  s.CreatedAt,
		TTLSeconds: int(h.registry.Config().TTL / time.Second),
	}
}

type searchConfigResp struct {
	DelayMs     int    `json:"delay_ms"`
	Placeholder string `json:"placeholder"`
	ShowClear   bool   `json:"show_clear"`
}

type searchStateResp struct {
	Live      string           `json:"live"`
	Committed string           `json:"committed"`
	Pending   bool             `json:"pending"`
	Config    searchConfigResp `json:"config"`
}

// resultItemResp is the card the search results panel renders. The full
// item detail stays on the menu endpoints.
type resultItemResp struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Category     string  `json:"category"`
	Available    bool    `json:"available"`
}

type searchResultsResp struct {
	Query string           `json:"query"`
	Items []resultItemResp `json:"items"`
	Total int              `json:"total"`
}

func newSearchResultsResp(res session.SearchResults) searchResultsResp {
	items := make([]resultItemResp, len(res.Items))
	for i, item := range res.Items {
		items[i] = resultItemResp{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price,
			PriceDisplay: currency.Format(item.Price),
			Category:     string(item.Category),
			Available:    item.Available,
		}
	}
	return searchResultsResp{
		Query: res.Query,
		Items: items,
		Total: len(items),
	}
}

func newSearchStateResp(d *search.Debouncer) searchStateResp {
	cfg := d.Config()
	return searchStateResp{
		Live:      d.Live(),
		Committed: d.Committed(),
		Pending:   d.Pending(),
		Config: searchConfigResp{
			DelayMs:     int(cfg.Delay / time.Millisecond),
			Placeholder: cfg.Placeholder,
			ShowClear:   cfg.ShowClear,
		},
	}
}
