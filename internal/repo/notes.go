package repo

import (
	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// Notes owns the notes collection.
type Notes struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewNotes creates the notes repository.
func NewNotes(p store.Provider, clock models.Clock, ids models.IDGenerator) *Notes {
	return &Notes{store: p, clock: clock, ids: ids}
}

// All returns every note in stored order (newest first).
func (r *Notes) All() []models.Note {
	return store.Load(r.store, store.KeyNotes, []models.Note{})
}

// List returns a filtered, non-mutating view of the collection.
func (r *Notes) List(f Filter) []models.Note {
	var out []models.Note
	for _, n := range r.All() {
		if !matchCategory(f.Category, string(n.Category)) {
			continue
		}
		if !matchQuery(f.Query, n.Title, n.Content) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Get returns the note with the given id.
func (r *Notes) Get(id int64) (*models.Note, error) {
	for _, n := range r.All() {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Create assigns an id and creation time and inserts the note at the head
// of the collection, newest first.
func (r *Notes) Create(n models.Note) (models.Note, error) {
	now := r.clock.Now()
	n.ID = r.ids.NextID()
	n.Mood = n.Mood.Normalize()
	n.CreatedAt = now
	n.UpdatedAt = now

	notes := append([]models.Note{n}, r.All()...)
	if err := store.Save(r.store, store.KeyNotes, notes); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

// NotePatch is a partial update; nil fields are left unchanged.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *models.NoteCategory
	Mood     *models.Mood
}

// Update merges patch into the note with the given id and stamps UpdatedAt.
// An unknown id is a silent no-op.
func (r *Notes) Update(id int64, patch NotePatch) error {
	notes := r.All()
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			notes[i].Content = *patch.Content
		}
		if patch.Category != nil {
			notes[i].Category = *patch.Category
		}
		if patch.Mood != nil {
			notes[i].Mood = patch.Mood.Normalize()
		}
		notes[i].UpdatedAt = r.clock.Now()
		return store.Save(r.store, store.KeyNotes, notes)
	}
	return nil
}

// Delete removes the note with the given id. Idempotent.
func (r *Notes) Delete(id int64) error {
	notes := r.All()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}
	return store.Save(r.store, store.KeyNotes, kept)
}

// Count returns the raw stored record count.
func (r *Notes) Count() int { return len(r.All()) }
