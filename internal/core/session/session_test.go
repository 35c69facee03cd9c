package session

import (
	"context"
	"errors"
	"testing"
)

func TestSelection_Merge(t *testing.T) {
	t.Parallel()

	base := Selection{PeriodID: 1, ContainerID: 10, Contract: "Hospital"}

	got := base.Merge(Selection{Contract: " Escola "})
	if got != (Selection{PeriodID: 1, ContainerID: 10, Contract: "Escola"}) {
		t.Fatalf("unexpected merge: %+v", got)
	}

	got = base.Merge(Selection{PeriodID: 2})
	if got.PeriodID != 2 || got.ContainerID != 0 {
		t.Fatalf("expected container reset when period changes, got %+v", got)
	}

	got = base.Merge(Selection{PeriodID: 1, ContainerID: 11})
	if got.ContainerID != 11 {
		t.Fatalf("expected container 11, got %+v", got)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	sel, err := store.Load(ctx, "maria")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !sel.Empty() {
		t.Fatalf("expected empty selection, got %+v", sel)
	}

	if err := store.Save(ctx, " Maria ", Selection{PeriodID: 3}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	sel, err = store.Load(ctx, "maria")
	if err != nil || sel.PeriodID != 3 {
		t.Fatalf("unexpected selection %+v err=%v", sel, err)
	}

	if _, err := store.Load(ctx, " "); !errors.Is(err, ErrInvalidActor) {
		t.Fatalf("expected ErrInvalidActor, got %v", err)
	}

	other := NewMemoryStore()
	if sel, _ := other.Load(ctx, "maria"); !sel.Empty() {
		t.Fatal("stores must not share state")
	}
}
