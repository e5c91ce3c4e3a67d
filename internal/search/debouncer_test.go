package search_test

import (
	"sync"
	"testing"
	"time"

	"ordering-kiosk/internal/search"
)

// recorder collects emitted commits behind a mutex so tests can poll safely.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// waitFor polls cond until it holds or the deadline passes.
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

const testDelay = 30 * time.Millisecond

func TestInputCommitsLatestValueOnce(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: testDelay}, rec.record)
	defer d.Close()

	d.Input("p")
	d.Input("pa")
	d.Input("pad thai")

	if got := d.Live(); got != "pad thai" {
		t.Errorf("live value should track keystrokes immediately, got %q", got)
	}
	if got := d.Committed(); got != "" {
		t.Errorf("committed too early: %q", got)
	}

	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 }) {
		t.Fatalf("expected one commit, got %v", rec.snapshot())
	}
	if got := rec.snapshot()[0]; got != "pad thai" {
		t.Errorf("expected latest value committed, got %q", got)
	}
	if got := d.Committed(); got != "pad thai" {
		t.Errorf("committed accessor disagrees: %q", got)
	}

	// A quiet stretch afterwards must not produce a second commit.
	time.Sleep(3 * testDelay)
	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("expected exactly one commit, got %v", got)
	}
}

func TestNewInputRestartsWindow(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: 60 * time.Millisecond}, rec.record)
	defer d.Close()

	d.Input("cur")
	time.Sleep(30 * time.Millisecond)
	d.Input("curry")

	// 30ms after the second keystroke the first window would have fired if it
	// had not been rescheduled from zero.
	time.Sleep(40 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("commit fired before the restarted window closed: %v", got)
	}

	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 }) {
		t.Fatalf("expected one commit, got %v", rec.snapshot())
	}
	if got := rec.snapshot()[0]; got != "curry" {
		t.Errorf("expected %q, got %q", "curry", got)
	}
}

func TestEachQuietWindowCommits(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: testDelay}, rec.record)
	defer d.Close()

	d.Input("tea")
	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 }) {
		t.Fatalf("first commit missing: %v", rec.snapshot())
	}

	d.Input("lemonade")
	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 2 }) {
		t.Fatalf("second commit missing: %v", rec.snapshot())
	}

	want := []string{"tea", "lemonade"}
	got := rec.snapshot()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commit %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSetReplacesLiveWithoutEmitting(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: testDelay}, rec.record)
	defer d.Close()

	d.Input("salm")
	d.Set("salmon")

	if got := d.Live(); got != "salmon" {
		t.Errorf("Set should replace live immediately, got %q", got)
	}
	if d.Pending() {
		t.Error("Set should cancel the pending commit")
	}

	time.Sleep(3 * testDelay)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("Set must never emit, got %v", got)
	}
}

func TestClearGoesThroughDebounceChannel(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: testDelay}, rec.record)
	defer d.Close()

	d.Input("noodles")
	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 }) {
		t.Fatalf("setup commit missing: %v", rec.snapshot())
	}

	d.Clear()
	if got := d.Live(); got != "" {
		t.Errorf("Clear should empty live immediately, got %q", got)
	}
	if got := d.Committed(); got != "noodles" {
		t.Errorf("committed should not change before the window closes, got %q", got)
	}

	if !waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 2 }) {
		t.Fatalf("clear commit missing: %v", rec.snapshot())
	}
	if got := rec.snapshot()[1]; got != "" {
		t.Errorf("expected empty commit, got %q", got)
	}
}

func TestCloseCancelsPendingCommit(t *testing.T) {
	rec := &recorder{}
	d := search.New(search.Options{Delay: testDelay}, rec.record)

	d.Input("late")
	d.Close()

	time.Sleep(3 * testDelay)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("no emission may happen after Close, got %v", got)
	}

	// Everything after Close is a no-op.
	d.Input("after")
	d.Clear()
	d.Set("x")
	time.Sleep(2 * testDelay)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("closed debouncer emitted: %v", got)
	}
	if got := d.Live(); got != "late" {
		t.Errorf("closed debouncer accepted input: %q", got)
	}
}

func TestDefaults(t *testing.T) {
	d := search.New(search.Options{}, nil)
	defer d.Close()

	cfg := d.Config()
	if cfg.Delay != search.DefaultDelay {
		t.Errorf("expected default delay %v, got %v", search.DefaultDelay, cfg.Delay)
	}
	if cfg.Placeholder != search.DefaultPlaceholder {
		t.Errorf("expected default placeholder, got %q", cfg.Placeholder)
	}

	opts := search.DefaultOptions()
	if !opts.ShowClear {
		t.Error("clear control should default to shown")
	}
}
