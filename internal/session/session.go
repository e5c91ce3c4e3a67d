package session

import (
	"context"
	"sync"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/cart/repository/memory"
	cartusecase "ordering-kiosk/internal/cart/usecase"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/search"
)

// Session owns one visitor's interaction state: the search box, the cart
// and both checkout forms. Everything is discarded together on close or
// eviction; nothing the session holds outlives it.
type Session struct {
	ID        string
	CreatedAt time.Time

	search    *search.Debouncer
	cart      cart.Controller
	dataEntry checkout.DataEntryEngine
	payment   checkout.PaymentEngine

	mu      sync.Mutex
	results SearchResults

	closeOnce sync.Once
}

func newSession(id string, deps Deps) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
	}
	l := deps.Logger

	store := memory.New()
	ctl := cartusecase.NewController(store, deps.Resolver, deps.Cart, l)
	s.cart = ctl

	// Each committed query runs the catalog search once; the results stay
	// on the session until the next commit replaces them.
	s.search = search.New(deps.Search, func(q string) {
		ctx := context.Background()
		if deps.Searcher == nil {
			return
		}
		items, err := deps.Searcher(ctx, q)
		if err != nil {
			l.Errorf(ctx, "session %s: search %q: %v", id, q, err)
			return
		}
		s.mu.Lock()
		s.results = SearchResults{Query: q, Items: items}
		s.mu.Unlock()
		l.Debugf(ctx, "session %s: search %q matched %d items", id, q, len(items))
	})

	s.dataEntry = checkout.NewDataEntryEngine(deps.Operator, deps.Checkout, func(entryID string) {
		l.Infof(context.Background(), "session %s: data entry %s completed", id, entryID)
	}, l)

	// A placed order consumes the cart.
	s.payment = checkout.NewPaymentEngine(deps.Operator, orderSummary(ctl), func(orderID string) {
		if err := ctl.Clear(context.Background()); err != nil {
			l.Errorf(context.Background(), "session %s: clear cart after order %s: %v", id, orderID, err)
			return
		}
		l.Infof(context.Background(), "session %s: order %s placed", id, orderID)
	}, l)

	return s
}

// Search is the session's query debouncer.
func (s *Session) Search() *search.Debouncer { return s.search }

// SearchResults returns the outcome of the last committed query. Zero until
// the first commit lands.
func (s *Session) SearchResults() SearchResults {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Cart is the session's cart controller.
func (s *Session) Cart() cart.Controller { return s.cart }

// DataEntry is the session's data-entry form engine.
func (s *Session) DataEntry() checkout.DataEntryEngine { return s.dataEntry }

// Payment is the session's payment form engine.
func (s *Session) Payment() checkout.PaymentEngine { return s.payment }

// Close cancels every pending timer the session owns. Safe to call more
// than once; explicit close and LRU eviction can race.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.search.Close()
		s.cart.Close()
		s.dataEntry.Close()
		s.payment.Close()
	})
}

// orderSummary adapts the cart snapshot into the order block of the
// payment payload.
func orderSummary(ctl cart.Controller) checkout.SummaryFunc {
	return func(ctx context.Context) (map[string]interface{}, error) {
		snap, err := ctl.Snapshot(ctx)
		if err != nil {
			return nil, err
		}

		lines := make([]map[string]interface{}, 0, len(snap.Lines))
		for _, ln := range snap.Lines {
			lines = append(lines, map[string]interface{}{
				"item_id":      ln.Item.ID,
				"name":         ln.Item.Name,
				"quantity":     ln.Quantity,
				"unit_price":   ln.Item.Price,
				"line_total":   ln.LineTotal,
				"instructions": ln.Instructions,
			})
		}
		return map[string]interface{}{
			"lines":      lines,
			"subtotal":   snap.Subtotal,
			"item_count": snap.ItemCount,
		}, nil
	}
}
