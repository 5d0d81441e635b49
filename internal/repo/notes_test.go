package repo

import (
	"testing"
	"time"

	"github.com/starford/wunjo/internal/models"
)

func TestNotesCreateInsertsAtHead(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	first, err := r.Create(models.Note{Title: "older", Content: "a", Category: models.NoteMemories})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Create(models.Note{Title: "newer", Content: "b", Category: models.NoteIdeas})
	if err != nil {
		t.Fatal(err)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("len = %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("newest note should be first: %+v", all)
	}
}

func TestNotesCreateNormalizesMood(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	n, err := r.Create(models.Note{Title: "t", Content: "c", Category: models.NoteMemories, Mood: "bogus"})
	if err != nil {
		t.Fatal(err)
	}
	if n.Mood != models.MoodHappy {
		t.Errorf("mood = %q, want default", n.Mood)
	}
}

func TestNotesListFilters(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	mustCreateNote(t, r, "Picnic plans", "by the river", models.NoteIdeas)
	mustCreateNote(t, r, "Anniversary", "dinner downtown", models.NoteImportant)

	if got := r.List(Filter{Category: "important"}); len(got) != 1 || got[0].Title != "Anniversary" {
		t.Errorf("category filter = %+v", got)
	}
	if got := r.List(Filter{Query: "river"}); len(got) != 1 || got[0].Title != "Picnic plans" {
		t.Errorf("query filter = %+v", got)
	}
	if got := r.List(Filter{Category: "all"}); len(got) != 2 {
		t.Errorf("all = %+v", got)
	}
}

func TestNotesUpdate(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	n := mustCreateNote(t, r, "before", "body", models.NoteMemories)

	if err := r.Update(n.ID, NotePatch{Title: strPtr("after")}); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get(n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "after" || got.Content != "body" {
		t.Errorf("patched note = %+v", got)
	}
}

func TestNotesUpdateUnknownIDIsNoop(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	mustCreateNote(t, r, "only", "body", models.NoteMemories)

	if err := r.Update(999, NotePatch{Title: strPtr("ghost")}); err != nil {
		t.Fatalf("unknown id should be silent: %v", err)
	}
	if all := r.All(); len(all) != 1 || all[0].Title != "only" {
		t.Errorf("collection changed: %+v", all)
	}
}

func TestNotesDeleteIdempotent(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 1)
	r := NewNotes(p, clock, ids)

	n := mustCreateNote(t, r, "gone", "body", models.NoteMemories)

	if err := r.Delete(n.ID); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(n.ID); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("count = %d", r.Count())
	}
}

func mustCreateNote(t *testing.T, r *Notes, title, content string, cat models.NoteCategory) models.Note {
	t.Helper()
	n, err := r.Create(models.Note{Title: title, Content: content, Category: cat})
	if err != nil {
		t.Fatal(err)
	}
	return n
}
