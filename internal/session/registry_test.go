package session_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/model"
	"ordering-kiosk/internal/search"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/operator"
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

type stubResolver struct {
	items map[string]model.MenuItem
}

func (r *stubResolver) ResolveItem(ctx context.Context, id string) (model.MenuItem, error) {
	return r.items[id], nil
}

type mockOperator struct {
	mu      sync.Mutex
	creates []operator.CreateDataEntryRequest
	entryID string
}

func (m *mockOperator) CreateDataEntry(ctx context.Context, req operator.CreateDataEntryRequest) (*operator.CreateDataEntryResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates = append(m.creates, req)
	id := m.entryID
	if id == "" {
		id = "entry-1"
	}
	return &operator.CreateDataEntryResponse{EntryID: id, Status: "draft"}, nil
}

func (m *mockOperator) GetDataEntry(ctx context.Context, entryID string) (*operator.DataEntry, error) {
	return nil, nil
}

func (m *mockOperator) ListDataEntries(ctx context.Context, req operator.ListDataEntriesRequest) (*operator.ListDataEntriesResponse, error) {
	return nil, nil
}

func (m *mockOperator) SubmitForApproval(ctx context.Context, entryID string) (*operator.SubmitForApprovalResponse, error) {
	return nil, nil
}

func (m *mockOperator) lastCreate() operator.CreateDataEntryRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates[len(m.creates)-1]
}

func testDeps(svc *mockOperator) session.Deps {
	menu := []model.MenuItem{
		{ID: "main-001", Name: "Grilled Salmon", Price: 18.00, Available: true},
		{ID: "bev-001", Name: "Lemonade", Price: 3.50, Available: true},
		{ID: "bev-002", Name: "Iced Mocha", Price: 5.25, Available: true},
	}
	byID := make(map[string]model.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}
	return session.Deps{
		Resolver: &stubResolver{items: byID},
		Operator: svc,
		Searcher: func(ctx context.Context, query string) ([]model.MenuItem, error) {
			out := []model.MenuItem{}
			for _, item := range menu {
				if strings.Contains(strings.ToLower(item.Name), strings.ToLower(query)) {
					out = append(out, item)
				}
			}
			return out, nil
		},
		Search:   search.Options{Delay: 20 * time.Millisecond, Placeholder: "Search", ShowClear: true},
		Cart:     cart.Options{SettleDelay: 20 * time.Millisecond, RequireRemovalConfirmation: true},
		Checkout: checkout.Options{SuccessDisplayDelay: 30 * time.Millisecond},
		Logger:   &mockLogger{},
	}
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

func TestRegistryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := session.NewRegistry(testDeps(&mockOperator{}), session.Options{}, &mockLogger{})
	defer r.Shutdown()

	s := r.Create(ctx)
	if s.ID == "" {
		t.Fatal("expected a session id")
	}

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Error("expected the same session instance")
	}

	if _, err := r.Get("ghost"); err != session.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegistryCloseTearsDown(t *testing.T) {
	ctx := context.Background()
	r := session.NewRegistry(testDeps(&mockOperator{}), session.Options{}, &mockLogger{})
	defer r.Shutdown()

	s := r.Create(ctx)
	s.Search().Input("latte")

	if err := r.Close(ctx, s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Get(s.ID); err != session.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after close, got %v", err)
	}

	// The pending debounce commit was cancelled by the teardown.
	time.Sleep(60 * time.Millisecond)
	if got := s.Search().Committed(); got != "" {
		t.Errorf("commit fired into a closed session: %q", got)
	}

	if err := r.Close(ctx, s.ID); err != session.ErrSessionNotFound {
		t.Errorf("double close should report ErrSessionNotFound, got %v", err)
	}
}

func TestRegistryCapacityEviction(t *testing.T) {
	ctx := context.Background()
	r := session.NewRegistry(testDeps(&mockOperator{}), session.Options{MaxSessions: 2}, &mockLogger{})
	defer r.Shutdown()

	s1 := r.Create(ctx)
	r.Create(ctx)
	r.Create(ctx)

	if r.Len() != 2 {
		t.Errorf("expected capacity 2, got %d", r.Len())
	}
	if _, err := r.Get(s1.ID); err != session.ErrSessionNotFound {
		t.Errorf("oldest session should be evicted, got %v", err)
	}

	// Eviction ran the teardown: the evicted session no longer reacts.
	s1.Search().Input("mocha")
	time.Sleep(60 * time.Millisecond)
	if got := s1.Search().Committed(); got != "" {
		t.Errorf("evicted session still committed %q", got)
	}
}

func TestRegistryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	r := session.NewRegistry(testDeps(&mockOperator{}), session.Options{TTL: 25 * time.Millisecond}, &mockLogger{})
	defer r.Shutdown()

	s := r.Create(ctx)
	if _, err := r.Get(s.ID); err != nil {
		t.Fatalf("fresh session should resolve: %v", err)
	}

	if !waitFor(t, time.Second, func() bool {
		_, err := r.Get(s.ID)
		return err == session.ErrSessionNotFound
	}) {
		t.Error("session never expired")
	}
}

func TestRegistryTouchExtendsTTL(t *testing.T) {
	ctx := context.Background()
	r := session.NewRegistry(testDeps(&mockOperator{}), session.Options{TTL: 100 * time.Millisecond}, &mockLogger{})
	defer r.Shutdown()

	s := r.Create(ctx)
	for i := 0; i < 6; i++ {
		time.Sleep(25 * time.Millisecond)
		r.Touch(s.ID)
	}

	// 150ms of wall time have passed, more than one TTL, but the session
	// was active throughout.
	if _, err := r.Get(s.ID); err != nil {
		t.Fatalf("touched session should still be live: %v", err)
	}

	if !waitFor(t, time.Second, func() bool {
		_, err := r.Get(s.ID)
		return err == session.ErrSessionNotFound
	}) {
		t.Error("idle session never expired")
	}
}
