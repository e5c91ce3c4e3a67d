package model

import "time"

// CartLine is one committed line in a session's cart. Lines reference items
// by ID only; the item is resolved on every snapshot so price and name can
// never go stale against the catalog.
type CartLine struct {
	ItemID       string
	Quantity     int    // 1..99, enforced by the store
	Instructions string // special instructions, at most 200 characters
	AddedAt      time.Time
	UpdatedAt    time.Time
}
