package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/models"
)

func TestWishesCreateAppendsAtTail(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	first := mustCreateWish(t, r, "first", models.PriorityHigh)
	second := mustCreateWish(t, r, "second", models.PriorityLow)

	all := r.All()
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("authored order broken: %+v", all)
	}
}

func TestWishesCreateDefaultsPriority(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	w, err := r.Create(models.Wish{Title: "t", Category: models.WishGoals, Priority: "urgent"})
	if err != nil {
		t.Fatal(err)
	}
	if w.Priority != models.PriorityLow {
		t.Errorf("priority = %q, want low", w.Priority)
	}
}

func TestWishesCreateResetsCompletion(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	w, err := r.Create(models.Wish{
		Title:       "sneaky",
		Category:    models.WishGoals,
		Completed:   true,
		CompletedAt: "2020-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if w.Completed || w.CompletedAt != "" {
		t.Errorf("completion not reset: %+v", w)
	}
}

func TestWishesCompleteMovesRecord(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	keep := mustCreateWish(t, r, "keep", models.PriorityLow)
	move := mustCreateWish(t, r, "move", models.PriorityHigh)

	done, err := r.Complete(move.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !done.Completed || done.CompletedAt == "" {
		t.Errorf("completion not stamped: %+v", done)
	}
	if _, err := time.Parse(time.RFC3339, done.CompletedAt); err != nil {
		t.Errorf("completedAt not RFC3339: %q", done.CompletedAt)
	}

	if active := r.All(); len(active) != 1 || active[0].ID != keep.ID {
		t.Errorf("active after complete = %+v", active)
	}
	completed := r.Completed()
	if len(completed) != 1 || completed[0].ID != move.ID {
		t.Errorf("completed after complete = %+v", completed)
	}
}

func TestWishesCompleteUnknownID(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	if _, err := r.Complete(404); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestWishesUpdateSkipsInvalidPriority(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	w := mustCreateWish(t, r, "stable", models.PriorityMedium)

	bad := models.Priority("critical")
	if err := r.Update(w.ID, WishPatch{Priority: &bad}); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get(w.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want unchanged", got.Priority)
	}
}

func TestWishesDeleteLeavesCompletedAlone(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewWishes(p, clock, ids)

	done := mustCreateWish(t, r, "done", models.PriorityLow)
	if _, err := r.Complete(done.ID); err != nil {
		t.Fatal(err)
	}

	// Delete targets the active collection only.
	if err := r.Delete(done.ID); err != nil {
		t.Fatal(err)
	}
	if r.CompletedCount() != 1 {
		t.Errorf("completed count = %d, want 1", r.CompletedCount())
	}
}

func mustCreateWish(t *testing.T, r *Wishes, title string, prio models.Priority) models.Wish {
	t.Helper()
	w, err := r.Create(models.Wish{Title: title, Category: models.WishExperiences, Priority: prio})
	if err != nil {
		t.Fatal(err)
	}
	return w
}
