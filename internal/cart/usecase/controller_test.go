package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/cart/repository"
	"ordering-kiosk/internal/cart/repository/memory"
	"ordering-kiosk/internal/cart/usecase"
	"ordering-kiosk/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// countingStore wraps the memory store and counts mutating calls so tests
// can assert "no store mutation happened".
type countingStore struct {
	repository.Repository
	mutations atomic.Int32
	removals  atomic.Int32
}

func newCountingStore() *countingStore {
	return &countingStore{Repository: memory.New()}
}

func (s *countingStore) IncrementItem(ctx context.Context, id string) error {
	s.mutations.Add(1)
	return s.Repository.IncrementItem(ctx, id)
}

func (s *countingStore) DecrementItem(ctx context.Context, id string) error {
	s.mutations.Add(1)
	return s.Repository.DecrementItem(ctx, id)
}

func (s *countingStore) UpdateQuantity(ctx context.Context, id string, q int) error {
	s.mutations.Add(1)
	return s.Repository.UpdateQuantity(ctx, id, q)
}

func (s *countingStore) RemoveItem(ctx context.Context, id string) error {
	s.mutations.Add(1)
	s.removals.Add(1)
	return s.Repository.RemoveItem(ctx, id)
}

func (s *countingStore) UpdateInstructions(ctx context.Context, id, text string) error {
	s.mutations.Add(1)
	return s.Repository.UpdateInstructions(ctx, id, text)
}

type mockResolver struct {
	items map[string]model.MenuItem
}

func (m *mockResolver) ResolveItem(ctx context.Context, id string) (model.MenuItem, error) {
	return m.items[id], nil
}

func testResolver() *mockResolver {
	return &mockResolver{items: map[string]model.MenuItem{
		"main-001": {ID: "main-001", Name: "Grilled Salmon", Price: 18.00, Available: true},
		"bev-001":  {ID: "bev-001", Name: "Lemonade", Price: 3.50, Available: true},
		"main-005": {ID: "main-005", Name: "Bolognese", Price: 16.75, Available: false},
	}}
}

const settle = 40 * time.Millisecond

func newController(store repository.Repository, opts cart.Options) cart.Controller {
	if opts.SettleDelay == 0 {
		opts.SettleDelay = settle
	}
	return usecase.NewController(store, testResolver(), opts, &mockLogger{})
}

func waitFor(t *testing.T, d time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func lineState(t *testing.T, ctl cart.Controller, id string) cart.LineState {
	t.Helper()
	snap, err := ctl.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ln := range snap.Lines {
		if ln.Item.ID == id {
			return ln.State
		}
	}
	t.Fatalf("line %s not in snapshot", id)
	return ""
}

func lineQuantity(t *testing.T, ctl cart.Controller, id string) int {
	t.Helper()
	snap, err := ctl.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ln := range snap.Lines {
		if ln.Item.ID == id {
			return ln.Quantity
		}
	}
	return 0
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown item", func(t *testing.T) {
		ctl := newController(newCountingStore(), cart.Options{})
		defer ctl.Close()

		if err := ctl.Add(ctx, "ghost", 1); !errors.Is(err, cart.ErrUnknownItem) {
			t.Errorf("expected ErrUnknownItem, got %v", err)
		}
	})

	t.Run("unavailable item", func(t *testing.T) {
		ctl := newController(newCountingStore(), cart.Options{})
		defer ctl.Close()

		if err := ctl.Add(ctx, "main-005", 1); !errors.Is(err, cart.ErrItemUnavailable) {
			t.Errorf("expected ErrItemUnavailable, got %v", err)
		}
	})

	t.Run("adds and merges", func(t *testing.T) {
		ctl := newController(newCountingStore(), cart.Options{})
		defer ctl.Close()

		if err := ctl.Add(ctx, "main-001", 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ctl.Add(ctx, "main-001", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q := lineQuantity(t, ctl, "main-001"); q != 3 {
			t.Errorf("expected quantity 3, got %d", q)
		}
	})
}

func TestIncrementSettles(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "main-001", 1)

	if err := ctl.Increment(ctx, "main-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := lineState(t, ctl, "main-001"); st != cart.LineUpdating {
		t.Errorf("expected Updating right after increment, got %s", st)
	}

	// A second increment while Updating is a silent no-op with no store call.
	before := store.mutations.Load()
	if err := ctl.Increment(ctx, "main-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.mutations.Load() != before {
		t.Error("increment while Updating must not reach the store")
	}
	if q := lineQuantity(t, ctl, "main-001"); q != 2 {
		t.Errorf("expected quantity 2, got %d", q)
	}

	if !waitFor(t, time.Second, func() bool { return lineState(t, ctl, "main-001") == cart.LineIdle }) {
		t.Fatal("line never settled back to Idle")
	}
}

func TestQuantityBoundsRefuseSilently(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "bev-001", 1)

	t.Run("decrement refuses at 1", func(t *testing.T) {
		before := store.mutations.Load()
		if err := ctl.Decrement(ctx, "bev-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.mutations.Load() != before {
			t.Error("refusal at the lower bound must not reach the store")
		}
		if st := lineState(t, ctl, "bev-001"); st != cart.LineIdle {
			t.Errorf("refusal must not enter Updating, got %s", st)
		}
	})

	t.Run("increment refuses at 99", func(t *testing.T) {
		ctl.SetQuantity(ctx, "bev-001", 99)
		if !waitFor(t, time.Second, func() bool { return lineState(t, ctl, "bev-001") == cart.LineIdle }) {
			t.Fatal("line never settled")
		}

		before := store.mutations.Load()
		if err := ctl.Increment(ctx, "bev-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.mutations.Load() != before {
			t.Error("refusal at the upper bound must not reach the store")
		}
		if q := lineQuantity(t, ctl, "bev-001"); q != 99 {
			t.Errorf("expected 99, got %d", q)
		}
	})
}

func TestSetQuantityClampsBeforeComparing(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "main-001", 1)
	ctl.SetQuantity(ctx, "main-001", 99)
	if !waitFor(t, time.Second, func() bool { return lineState(t, ctl, "main-001") == cart.LineIdle }) {
		t.Fatal("line never settled")
	}

	// 500 clamps to 99 == current, so this must be a full no-op.
	before := store.mutations.Load()
	if err := ctl.SetQuantity(ctx, "main-001", 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.mutations.Load() != before {
		t.Error("clamped-equal set must not reach the store")
	}
	if st := lineState(t, ctl, "main-001"); st != cart.LineIdle {
		t.Errorf("clamped-equal set must not enter Updating, got %s", st)
	}

	if err := ctl.SetQuantity(ctx, "main-001", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := lineQuantity(t, ctl, "main-001"); q != 5 {
		t.Errorf("expected 5, got %d", q)
	}
}

func TestRemovalConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel leaves the store untouched", func(t *testing.T) {
		store := newCountingStore()
		ctl := newController(store, cart.Options{RequireRemovalConfirmation: true})
		defer ctl.Close()

		ctl.Add(ctx, "main-001", 2)

		if err := ctl.Remove(ctx, "main-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st := lineState(t, ctl, "main-001"); st != cart.LineConfirmingRemoval {
			t.Fatalf("expected ConfirmingRemoval, got %s", st)
		}
		if store.removals.Load() != 0 {
			t.Error("remove must not touch the store before confirmation")
		}

		if err := ctl.CancelRemove(ctx, "main-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st := lineState(t, ctl, "main-001"); st != cart.LineIdle {
			t.Errorf("expected Idle after cancel, got %s", st)
		}
		if store.removals.Load() != 0 {
			t.Error("cancelled removal must issue zero store mutations")
		}
		if q := lineQuantity(t, ctl, "main-001"); q != 2 {
			t.Errorf("line should survive cancellation, got quantity %d", q)
		}
	})

	t.Run("confirm removes the line", func(t *testing.T) {
		store := newCountingStore()
		ctl := newController(store, cart.Options{RequireRemovalConfirmation: true})
		defer ctl.Close()

		ctl.Add(ctx, "main-001", 1)
		ctl.Remove(ctx, "main-001")
		if err := ctl.ConfirmRemove(ctx, "main-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap, _ := ctl.Snapshot(ctx)
		if len(snap.Lines) != 0 {
			t.Errorf("expected empty cart, got %+v", snap.Lines)
		}
		if store.removals.Load() != 1 {
			t.Errorf("expected exactly one store removal, got %d", store.removals.Load())
		}
	})

	t.Run("confirm without pending removal is a no-op", func(t *testing.T) {
		store := newCountingStore()
		ctl := newController(store, cart.Options{RequireRemovalConfirmation: true})
		defer ctl.Close()

		ctl.Add(ctx, "main-001", 1)
		if err := ctl.ConfirmRemove(ctx, "main-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.removals.Load() != 0 {
			t.Error("stray confirm must not remove anything")
		}
	})

	t.Run("immediate mode skips confirmation", func(t *testing.T) {
		store := newCountingStore()
		ctl := newController(store, cart.Options{RequireRemovalConfirmation: false})
		defer ctl.Close()

		ctl.Add(ctx, "main-001", 1)
		if err := ctl.Remove(ctx, "main-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := ctl.Snapshot(ctx)
		if len(snap.Lines) != 0 {
			t.Errorf("expected empty cart, got %+v", snap.Lines)
		}
	})
}

func TestInstructionsEditing(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "main-001", 1)
	ctl.BeginInstructions(ctx, "main-001")
	ctl.InputInstructions(ctx, "main-001", "extra lemon")
	if err := ctl.SaveInstructions(ctx, "main-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := ctl.Snapshot(ctx)
	if snap.Lines[0].Instructions != "extra lemon" {
		t.Errorf("expected committed instructions, got %q", snap.Lines[0].Instructions)
	}
	if snap.Lines[0].State != cart.LineIdle {
		t.Errorf("expected Idle after save, got %s", snap.Lines[0].State)
	}

	t.Run("draft seeds from committed value", func(t *testing.T) {
		ctl.BeginInstructions(ctx, "main-001")
		snap, _ := ctl.Snapshot(ctx)
		if snap.Lines[0].Draft != "extra lemon" {
			t.Errorf("expected seeded draft, got %q", snap.Lines[0].Draft)
		}
	})

	t.Run("over-cap input is refused, draft unchanged", func(t *testing.T) {
		err := ctl.InputInstructions(ctx, "main-001", strings.Repeat("z", 201))
		if !errors.Is(err, cart.ErrInstructionsTooLong) {
			t.Errorf("expected ErrInstructionsTooLong, got %v", err)
		}
		snap, _ := ctl.Snapshot(ctx)
		if snap.Lines[0].Draft != "extra lemon" {
			t.Errorf("refused input must keep the draft, got %q", snap.Lines[0].Draft)
		}
	})

	t.Run("cancel discards the draft", func(t *testing.T) {
		ctl.InputInstructions(ctx, "main-001", "no lemon at all")
		before := store.mutations.Load()
		ctl.CancelInstructions(ctx, "main-001")

		snap, _ := ctl.Snapshot(ctx)
		if snap.Lines[0].Instructions != "extra lemon" {
			t.Errorf("cancel must keep the committed value, got %q", snap.Lines[0].Instructions)
		}
		if snap.Lines[0].State != cart.LineIdle {
			t.Errorf("expected Idle after cancel, got %s", snap.Lines[0].State)
		}
		if store.mutations.Load() != before {
			t.Error("cancel must not reach the store")
		}
	})
}

func TestSnapshotTotals(t *testing.T) {
	ctx := context.Background()
	ctl := newController(newCountingStore(), cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "main-001", 2) // 2 × 18.00
	ctl.Add(ctx, "bev-001", 3)  // 3 × 3.50

	snap, err := ctl.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
	}
	if snap.Lines[0].LineTotal != 36.00 {
		t.Errorf("expected line total 36.00, got %v", snap.Lines[0].LineTotal)
	}
	if snap.Subtotal != 46.50 {
		t.Errorf("expected subtotal 46.50, got %v", snap.Subtotal)
	}
	if snap.ItemCount != 5 {
		t.Errorf("expected 5 units, got %d", snap.ItemCount)
	}
}

func TestCloseStopsOperations(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})

	ctl.Add(ctx, "main-001", 1)
	ctl.Increment(ctx, "main-001")
	ctl.Close()

	before := store.mutations.Load()
	if err := ctl.Increment(ctx, "main-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.mutations.Load() != before {
		t.Error("closed controller must not reach the store")
	}
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	ctl := newController(store, cart.Options{})
	defer ctl.Close()

	ctl.Add(ctx, "main-001", 2)
	ctl.Add(ctx, "bev-001", 1)
	ctl.Remove(ctx, "main-001") // pending confirmation survives nothing

	if err := ctl.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := ctl.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Lines) != 0 || snap.Subtotal != 0 || snap.ItemCount != 0 {
		t.Errorf("expected an empty snapshot, got %+v", snap)
	}

	// A fresh add after clearing starts a brand new line in Idle.
	if err := ctl.Add(ctx, "main-001", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := lineState(t, ctl, "main-001"); st != cart.LineIdle {
		t.Errorf("expected Idle, got %s", st)
	}
}
