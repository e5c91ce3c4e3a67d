package session

import (
	"context"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/model"
	"ordering-kiosk/internal/search"
	"ordering-kiosk/pkg/log"
)

// Registry defaults. A session idle for the TTL is torn down; capacity
// bounds the number of concurrent visitors a kiosk will track.
const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Options tunes the registry.
type Options struct {
	TTL         time.Duration
	MaxSessions int
}

func DefaultOptions() Options {
	return Options{
		TTL:         DefaultTTL,
		MaxSessions: DefaultMaxSessions,
	}
}

// SearchFunc answers a committed query with the matching menu items. The
// session's debouncer emits into it once per quiescent window.
type SearchFunc func(ctx context.Context, query string) ([]model.MenuItem, error)

// SearchResults is the outcome of the last committed query.
type SearchResults struct {
	Query string
	Items []model.MenuItem
}

// Deps are the collaborators every session shares. The registry holds one
// copy and threads it into each session it creates.
type Deps struct {
	Resolver cart.ItemResolver
	Operator checkout.OperatorService
	Searcher SearchFunc
	Search   search.Options
	Cart     cart.Options
	Checkout checkout.Options
	Logger   log.Logger
}
