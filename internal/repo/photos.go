package repo

import (
	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/checksum"
	"github.com/starford/wunjo/internal/dates"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// Photos owns the gallery collection. Images travel inline as data URIs; no
// size cap is enforced on the encoded payload.
type Photos struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewPhotos creates the photos repository.
func NewPhotos(p store.Provider, clock models.Clock, ids models.IDGenerator) *Photos {
	return &Photos{store: p, clock: clock, ids: ids}
}

// All returns every photo in stored order (newest first).
func (r *Photos) All() []models.Photo {
	return store.Load(r.store, store.KeyPhotos, []models.Photo{})
}

// List returns a filtered, non-mutating view. The special category
// "favorites" selects favorited photos across all categories.
func (r *Photos) List(f Filter) []models.Photo {
	var out []models.Photo
	for _, p := range r.All() {
		if f.Category == "favorites" {
			if !p.IsFavorite {
				continue
			}
		} else if !matchCategory(f.Category, string(p.Category)) {
			continue
		}
		if !matchQuery(f.Query, p.Title, p.Description, p.Location) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns the photo with the given id.
func (r *Photos) Get(id int64) (*models.Photo, error) {
	for _, p := range r.All() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Create assigns an id, stamps the image checksum, and inserts the photo at
// the head of the collection, newest first. An empty date defaults to today.
func (r *Photos) Create(p models.Photo) (models.Photo, error) {
	now := r.clock.Now()
	if p.Date == "" {
		p.Date = dates.Format(now)
	} else if _, err := dates.ParseLocal(p.Date); err != nil {
		return models.Photo{}, apperr.ErrInvalid
	}
	p.ID = r.ids.NextID()
	p.Checksum = checksum.Sum([]byte(p.Image))
	p.IsFavorite = false
	p.CreatedAt = now

	photos := append([]models.Photo{p}, r.All()...)
	if err := store.Save(r.store, store.KeyPhotos, photos); err != nil {
		return models.Photo{}, err
	}
	return p, nil
}

// ToggleFavorite flips the favorite flag. Returns the updated photo, or
// ErrNotFound for an unknown id.
func (r *Photos) ToggleFavorite(id int64) (*models.Photo, error) {
	photos := r.All()
	for i := range photos {
		if photos[i].ID != id {
			continue
		}
		photos[i].IsFavorite = !photos[i].IsFavorite
		if err := store.Save(r.store, store.KeyPhotos, photos); err != nil {
			return nil, err
		}
		return &photos[i], nil
	}
	return nil, apperr.ErrNotFound
}

// Delete removes the photo with the given id. Idempotent.
func (r *Photos) Delete(id int64) error {
	photos := r.All()
	kept := photos[:0]
	for _, p := range photos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(photos) {
		return nil
	}
	return store.Save(r.store, store.KeyPhotos, kept)
}

// PhotoStats summarizes the gallery.
type PhotoStats struct {
	Total     int `json:"total"`
	Albums    int `json:"albums"`
	Favorites int `json:"favorites"`
}

// Stats counts photos, distinct categories, and favorites.
func (r *Photos) Stats() PhotoStats {
	photos := r.All()
	cats := make(map[models.PhotoCategory]struct{})
	favorites := 0
	for _, p := range photos {
		cats[p.Category] = struct{}{}
		if p.IsFavorite {
			favorites++
		}
	}
	return PhotoStats{Total: len(photos), Albums: len(cats), Favorites: favorites}
}

// Count returns the raw stored record count.
func (r *Photos) Count() int { return len(r.All()) }
