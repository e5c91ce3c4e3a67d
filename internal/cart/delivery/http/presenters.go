package http

import (
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/pkg/currency"
)

// --- Request DTOs ---

type addReq struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (r *addReq) validate() error {
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	return nil
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

type instructionsReq struct {
	Text string `json:"text"`
}

// --- Response DTOs ---

type lineItemResp struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Category     string  `json:"category"`
	Available    bool    `json:"available"`
}

type lineResp struct {
	Item             lineItemResp `json:"item"`
	Quantity         int          `json:"quantity"`
	Instructions     string       `json:"instructions"`
	State            string       `json:"state"`
	Draft            string       `json:"draft,omitempty"`
	LineTotal        float64      `json:"line_total"`
	LineTotalDisplay string       `json:"line_total_display"`
	AddedAt          time.Time    `json:"added_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type snapshotResp struct {
	Lines           []lineResp `json:"lines"`
	Subtotal        float64    `json:"subtotal"`
	SubtotalDisplay string     `json:"subtotal_display"`
	ItemCount       int        `json:"item_count"`
}

func newLineResp(ln cart.Line) lineResp {
	return lineResp{
		Item: lineItemResp{
			ID:           ln.Item.ID,
			Name:         ln.Item.Name,
			Price:        ln.Item.Price,
			PriceDisplay: currency.Format(ln.Item.Price),
			Category:     string(ln.Item.Category),
			Available:    ln.Item.Available,
		},
		Quantity:         ln.Quantity,
		Instructions:     ln.Instructions,
		State:            string(ln.State),
		Draft:            ln.Draft,
		LineTotal:        ln.LineTotal,
		LineTotalDisplay: currency.Format(ln.LineTotal),
		AddedAt:          ln.AddedAt,
		UpdatedAt:        ln.UpdatedAt,
	}
}

func (h *handler) newSnapshotResp(snap cart.Snapshot) snapshotResp {
	lines := make([]lineResp, len(snap.Lines))
	for i, ln := range snap.Lines {
		lines[i] = newLineResp(ln)
	}
	return snapshotResp{
		Lines:           lines,
		Subtotal:        snap.Subtotal,
		SubtotalDisplay: currency.Format(snap.Subtotal),
		ItemCount:       snap.ItemCount,
	}
}
