package checkout_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ordering-kiosk/internal/checkout"
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

// mockOperator records creates and can be told to fail them.
type mockOperator struct {
	mu        sync.Mutex
	creates   []operator.CreateDataEntryRequest
	createErr error
	entryID   string
}

func (m *mockOperator) CreateDataEntry(ctx context.Context, req operator.CreateDataEntryRequest) (*operator.CreateDataEntryResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
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

func (m *mockOperator) createCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.creates)
}

func (m *mockOperator) lastCreate() operator.CreateDataEntryRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates[len(m.creates)-1]
}

const displayDelay = 40 * time.Millisecond

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

func fillValidDraft(ctx context.Context, eng checkout.DataEntryEngine) {
	eng.SetEntryType(ctx, checkout.EntryTypeSupply)
	eng.SetTitle(ctx, "Coffee restock")
	eng.SetDescription(ctx, "Need 20 more bags of beans")
	eng.SetQuantity(ctx, 5)
	eng.SetPriority(ctx, checkout.PriorityHigh)
}

func TestDataEntryValidationAbortsSubmit(t *testing.T) {
	ctx := context.Background()
	svc := &mockOperator{}
	eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: displayDelay}, nil, &mockLogger{})
	defer eng.Close()

	fillValidDraft(ctx, eng)
	eng.SetTitle(ctx, "ab")

	st, err := eng.Submit(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.FormError != "Title must be at least 3 characters" {
		t.Errorf("unexpected form error %q", st.FormError)
	}
	if st.Phase != checkout.PhaseIdle {
		t.Errorf("failed validation must stay Idle, got %s", st.Phase)
	}
	if svc.createCount() != 0 {
		t.Error("validation failure must not reach the remote boundary")
	}
	if st.Draft.Title != "ab" {
		t.Errorf("draft must be retained, got %q", st.Draft.Title)
	}
}

func TestDataEntrySubmitSuccess(t *testing.T) {
	ctx := context.Background()
	svc := &mockOperator{entryID: "entry-42"}
	var completions atomic.Int32
	var completedWith atomic.Value
	onComplete := func(entryID string) {
		completions.Add(1)
		completedWith.Store(entryID)
	}
	eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: displayDelay}, onComplete, &mockLogger{})
	defer eng.Close()

	fillValidDraft(ctx, eng)

	st, err := eng.Submit(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Phase != checkout.PhaseSucceeded {
		t.Fatalf("expected Succeeded, got %s", st.Phase)
	}
	if st.EntryID != "entry-42" {
		t.Errorf("expected backend entry id, got %q", st.EntryID)
	}

	req := svc.lastCreate()
	if req.EntryType != checkout.EntryTypeSupply {
		t.Errorf("unexpected entry_type %q", req.EntryType)
	}
	if req.Data["title"] != "Coffee restock" || req.Data["quantity"] != 5 {
		t.Errorf("unexpected payload: %+v", req.Data)
	}
	if id, ok := req.Data["client_request_id"].(string); !ok || id == "" {
		t.Error("expected a client_request_id in the payload")
	}

	// The success display ends with an auto-reset to the default draft and
	// exactly one completion callback.
	if !waitFor(t, time.Second, func() bool { return eng.State(ctx).Phase == checkout.PhaseIdle }) {
		t.Fatal("form never reset after the success display")
	}
	if got := eng.State(ctx).Draft; got != checkout.DefaultDataEntryDraft() {
		t.Errorf("expected the default draft after reset, got %+v", got)
	}
	if completions.Load() != 1 {
		t.Fatalf("expected exactly one completion, got %d", completions.Load())
	}
	if completedWith.Load() != "entry-42" {
		t.Errorf("callback got %v", completedWith.Load())
	}

	time.Sleep(2 * displayDelay)
	if completions.Load() != 1 {
		t.Errorf("completion fired again: %d", completions.Load())
	}
}

func TestDataEntryRemoteFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("backend detail shown verbatim", func(t *testing.T) {
		svc := &mockOperator{createErr: &operator.APIError{StatusCode: 422, Detail: "Entry rejected by policy"}}
		eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: displayDelay}, nil, &mockLogger{})
		defer eng.Close()

		fillValidDraft(ctx, eng)
		st, _ := eng.Submit(ctx)
		if st.Phase != checkout.PhaseIdle {
			t.Errorf("expected Idle after failure, got %s", st.Phase)
		}
		if st.FormError != "Entry rejected by policy" {
			t.Errorf("expected the backend message, got %q", st.FormError)
		}
		if st.Draft.Title != "Coffee restock" {
			t.Errorf("draft must stay intact, got %q", st.Draft.Title)
		}
	})

	t.Run("generic fallback without detail", func(t *testing.T) {
		svc := &mockOperator{createErr: errors.New("connection refused")}
		eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: displayDelay}, nil, &mockLogger{})
		defer eng.Close()

		fillValidDraft(ctx, eng)
		st, _ := eng.Submit(ctx)
		if st.FormError != "Submission failed. Please try again." {
			t.Errorf("expected the generic fallback, got %q", st.FormError)
		}
	})
}

func TestDataEntryDisabledWhileSucceeded(t *testing.T) {
	ctx := context.Background()
	svc := &mockOperator{}
	eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: time.Second}, nil, &mockLogger{})
	defer eng.Close()

	fillValidDraft(ctx, eng)
	st, _ := eng.Submit(ctx)
	if st.Phase != checkout.PhaseSucceeded {
		t.Fatalf("expected Succeeded, got %s", st.Phase)
	}

	if st, _ = eng.SetTitle(ctx, "changed"); st.Draft.Title == "changed" {
		t.Error("setter must not act while the success indicator is up")
	}
	if st, _ = eng.Reset(ctx); st.Phase != checkout.PhaseSucceeded {
		t.Error("reset must not act while the success indicator is up")
	}
	if st, _ = eng.Submit(ctx); svc.createCount() != 1 {
		t.Errorf("resubmit while Succeeded must not call the boundary, got %d calls", svc.createCount())
	}
}

func TestDataEntryCloseCancelsAutoReset(t *testing.T) {
	ctx := context.Background()
	svc := &mockOperator{}
	var completions atomic.Int32
	eng := checkout.NewDataEntryEngine(svc, checkout.Options{SuccessDisplayDelay: displayDelay},
		func(string) { completions.Add(1) }, &mockLogger{})

	fillValidDraft(ctx, eng)
	if st, _ := eng.Submit(ctx); st.Phase != checkout.PhaseSucceeded {
		t.Fatalf("expected Succeeded, got %s", st.Phase)
	}
	eng.Close()

	time.Sleep(3 * displayDelay)
	if completions.Load() != 0 {
		t.Errorf("completion fired into a closed engine %d times", completions.Load())
	}
}

func TestDataEntryManualReset(t *testing.T) {
	ctx := context.Background()
	eng := checkout.NewDataEntryEngine(&mockOperator{}, checkout.Options{}, nil, &mockLogger{})
	defer eng.Close()

	fillValidDraft(ctx, eng)
	eng.SetNotes(ctx, "urgent")

	st, err := eng.Reset(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Draft != checkout.DefaultDataEntryDraft() {
		t.Errorf("expected defaults, got %+v", st.Draft)
	}
	if st.FormError != "" {
		t.Errorf("reset must clear the form error, got %q", st.FormError)
	}
}
