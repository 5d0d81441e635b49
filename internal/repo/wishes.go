package repo

import (
	"time"

	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// Wishes owns the active wishes collection and, for the completion flow,
// the completed collection. No other component writes either key.
type Wishes struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewWishes creates the wishes repository.
func NewWishes(p store.Provider, clock models.Clock, ids models.IDGenerator) *Wishes {
	return &Wishes{store: p, clock: clock, ids: ids}
}

// All returns every active wish in authored order.
func (r *Wishes) All() []models.Wish {
	return store.Load(r.store, store.KeyWishes, []models.Wish{})
}

// Completed returns the completed wishes in completion order.
func (r *Wishes) Completed() []models.Wish {
	return store.Load(r.store, store.KeyCompleted, []models.Wish{})
}

// List returns a filtered, non-mutating view of the active wishes.
func (r *Wishes) List(f Filter) []models.Wish {
	var out []models.Wish
	for _, w := range r.All() {
		if !matchCategory(f.Category, string(w.Category)) {
			continue
		}
		if !matchQuery(f.Query, w.Title, w.Description) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Get returns the active wish with the given id.
func (r *Wishes) Get(id int64) (*models.Wish, error) {
	for _, w := range r.All() {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Create assigns an id and creation time and appends the wish.
func (r *Wishes) Create(w models.Wish) (models.Wish, error) {
	w.ID = r.ids.NextID()
	if !w.Priority.Valid() {
		w.Priority = models.PriorityLow
	}
	w.Completed = false
	w.CompletedAt = ""
	w.CreatedAt = r.clock.Now()

	wishes := append(r.All(), w)
	if err := store.Save(r.store, store.KeyWishes, wishes); err != nil {
		return models.Wish{}, err
	}
	return w, nil
}

// WishPatch is a partial update; nil fields are left unchanged.
type WishPatch struct {
	Title       *string
	Description *string
	Category    *models.WishCategory
	Priority    *models.Priority
	Estimate    *string
}

// Update merges patch into the wish with the given id. An unknown id is a
// silent no-op.
func (r *Wishes) Update(id int64, patch WishPatch) error {
	wishes := r.All()
	for i := range wishes {
		if wishes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			wishes[i].Title = *patch.Title
		}
		if patch.Description != nil {
			wishes[i].Description = *patch.Description
		}
		if patch.Category != nil {
			wishes[i].Category = *patch.Category
		}
		if patch.Priority != nil && patch.Priority.Valid() {
			wishes[i].Priority = *patch.Priority
		}
		if patch.Estimate != nil {
			wishes[i].Estimate = *patch.Estimate
		}
		return store.Save(r.store, store.KeyWishes, wishes)
	}
	return nil
}

// Complete marks the wish done and moves it from the active collection into
// the completed collection, stamping CompletedAt. The completed key is
// written first so a crash between the two saves can duplicate the wish but
// never lose it.
func (r *Wishes) Complete(id int64) (*models.Wish, error) {
	wishes := r.All()
	idx := -1
	for i := range wishes {
		if wishes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.ErrNotFound
	}

	done := wishes[idx]
	done.Completed = true
	done.CompletedAt = r.clock.Now().Format(time.RFC3339)

	completed := append(r.Completed(), done)
	if err := store.Save(r.store, store.KeyCompleted, completed); err != nil {
		return nil, err
	}

	remaining := append(wishes[:idx:idx], wishes[idx+1:]...)
	if err := store.Save(r.store, store.KeyWishes, remaining); err != nil {
		return nil, err
	}
	return &done, nil
}

// Delete removes the active wish with the given id. Idempotent.
func (r *Wishes) Delete(id int64) error {
	wishes := r.All()
	kept := wishes[:0]
	for _, w := range wishes {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(wishes) {
		return nil
	}
	return store.Save(r.store, store.KeyWishes, kept)
}

// Count returns the raw stored active-wish count.
func (r *Wishes) Count() int { return len(r.All()) }

// CompletedCount returns the raw stored completed-wish count.
func (r *Wishes) CompletedCount() int { return len(r.Completed()) }
