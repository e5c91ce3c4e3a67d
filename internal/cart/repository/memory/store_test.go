package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ordering-kiosk/internal/cart/repository"
	"ordering-kiosk/internal/cart/repository/memory"
)

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	t.Run("creates a line", func(t *testing.T) {
		line, err := store.AddItem(ctx, "main-001", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", line.Quantity)
		}
	})

	t.Run("merges repeated adds", func(t *testing.T) {
		line, err := store.AddItem(ctx, "main-001", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", line.Quantity)
		}
	})

	t.Run("clamps merged quantity at 99", func(t *testing.T) {
		line, err := store.AddItem(ctx, "main-001", 500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 99 {
			t.Errorf("expected clamp at 99, got %d", line.Quantity)
		}
	})
}

func TestQuantityBounds(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.AddItem(ctx, "bev-001", 1)

	t.Run("decrement clamps at 1", func(t *testing.T) {
		if err := store.DecrementItem(ctx, "bev-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ := store.GetLine(ctx, "bev-001")
		if line.Quantity != 1 {
			t.Errorf("expected 1, got %d", line.Quantity)
		}
	})

	t.Run("update clamps into range", func(t *testing.T) {
		if err := store.UpdateQuantity(ctx, "bev-001", 1000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ := store.GetLine(ctx, "bev-001")
		if line.Quantity != 99 {
			t.Errorf("expected 99, got %d", line.Quantity)
		}

		if err := store.UpdateQuantity(ctx, "bev-001", -4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ = store.GetLine(ctx, "bev-001")
		if line.Quantity != 1 {
			t.Errorf("expected 1, got %d", line.Quantity)
		}
	})

	t.Run("mutations on absent lines fail", func(t *testing.T) {
		if err := store.IncrementItem(ctx, "ghost"); !errors.Is(err, repository.ErrLineNotFound) {
			t.Errorf("expected ErrLineNotFound, got %v", err)
		}
	})
}

func TestInstructions(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.AddItem(ctx, "main-003", 1)

	t.Run("stores text", func(t *testing.T) {
		if err := store.UpdateInstructions(ctx, "main-003", "no pickles"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _ := store.GetLine(ctx, "main-003")
		if line.Instructions != "no pickles" {
			t.Errorf("unexpected instructions: %q", line.Instructions)
		}
	})

	t.Run("rejects text over 200 characters", func(t *testing.T) {
		long := strings.Repeat("x", 201)
		err := store.UpdateInstructions(ctx, "main-003", long)
		if !errors.Is(err, repository.ErrInstructionsTooLong) {
			t.Errorf("expected ErrInstructionsTooLong, got %v", err)
		}
		line, _ := store.GetLine(ctx, "main-003")
		if line.Instructions != "no pickles" {
			t.Errorf("rejected write must not change the line, got %q", line.Instructions)
		}
	})

	t.Run("accepts exactly 200 characters", func(t *testing.T) {
		exact := strings.Repeat("y", 200)
		if err := store.UpdateInstructions(ctx, "main-003", exact); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListOrderAndRemoval(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.AddItem(ctx, "a", 1)
	store.AddItem(ctx, "b", 1)
	store.AddItem(ctx, "c", 1)

	lines, err := store.ListLines(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 || lines[0].ItemID != "a" || lines[2].ItemID != "c" {
		t.Fatalf("expected insertion order a,b,c, got %+v", lines)
	}

	if err := store.RemoveItem(ctx, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, _ = store.ListLines(ctx)
	if len(lines) != 2 || lines[0].ItemID != "a" || lines[1].ItemID != "c" {
		t.Errorf("expected a,c after removal, got %+v", lines)
	}

	if err := store.RemoveItem(ctx, "b"); !errors.Is(err, repository.ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound on double remove, got %v", err)
	}

	t.Run("get miss returns zero line without error", func(t *testing.T) {
		line, err := store.GetLine(ctx, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.ItemID != "" {
			t.Errorf("expected zero line, got %+v", line)
		}
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.AddItem(ctx, "a", 2)
	store.AddItem(ctx, "b", 1)

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, _ := store.ListLines(ctx)
	if len(lines) != 0 {
		t.Errorf("expected an empty store, got %+v", lines)
	}

	// The store is still usable afterwards.
	if _, err := store.AddItem(ctx, "c", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, _ = store.ListLines(ctx)
	if len(lines) != 1 || lines[0].ItemID != "c" {
		t.Errorf("expected a single fresh line, got %+v", lines)
	}
}
