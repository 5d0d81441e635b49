package repo

import (
	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/dates"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// Trips owns the trips collection. Status is derived from the date range on
// every listing, so a trip moves through planned → current → completed as
// real time passes without any scheduled job.
type Trips struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewTrips creates the trips repository.
func NewTrips(p store.Provider, clock models.Clock, ids models.IDGenerator) *Trips {
	return &Trips{store: p, clock: clock, ids: ids}
}

// StatusFor derives a trip's lifecycle status at the given instant. The
// range is inclusive on both ends: a trip starting and ending today is
// current for that whole day. Unparsable dates leave the trip planned.
func StatusFor(t models.Trip, now models.Clock) models.TripStatus {
	start, err := dates.ParseLocal(t.StartDate)
	if err != nil {
		return models.TripPlanned
	}
	end, err := dates.ParseLocal(t.EndDate)
	if err != nil {
		return models.TripPlanned
	}
	day := dates.Midnight(now.Now())
	switch {
	case day.After(end):
		return models.TripCompleted
	case !day.Before(start):
		return models.TripCurrent
	default:
		return models.TripPlanned
	}
}

// All returns every trip with freshly derived statuses. When any stored
// status went stale the refreshed set is written back, mirroring the
// refresh-on-display behavior the pages rely on. The write-back is an
// optimization of the stored copy only; readers never trust it over the
// derivation.
func (r *Trips) All() []models.Trip {
	trips := store.Load(r.store, store.KeyTrips, []models.Trip{})
	changed := false
	for i := range trips {
		if status := StatusFor(trips[i], r.clock); status != trips[i].Status {
			trips[i].Status = status
			changed = true
		}
	}
	if changed {
		// Best effort; the derived values stand even if the write fails.
		_ = store.Save(r.store, store.KeyTrips, trips)
	}
	return trips
}

// List returns trips with the given derived status, or all trips when
// status is empty.
func (r *Trips) List(status models.TripStatus) []models.Trip {
	var out []models.Trip
	for _, t := range r.All() {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the trip with the given id, status freshly derived.
func (r *Trips) Get(id int64) (*models.Trip, error) {
	for _, t := range r.All() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Create assigns an id, derives the initial status, and appends the trip.
// Any caller-supplied status is discarded.
func (r *Trips) Create(t models.Trip) (models.Trip, error) {
	if _, err := dates.ParseLocal(t.StartDate); err != nil {
		return models.Trip{}, apperr.ErrInvalid
	}
	if _, err := dates.ParseLocal(t.EndDate); err != nil {
		return models.Trip{}, apperr.ErrInvalid
	}
	t.ID = r.ids.NextID()
	t.Status = StatusFor(t, r.clock)
	t.CreatedAt = r.clock.Now()
	if t.Memories == nil {
		t.Memories = []string{}
	}
	if t.Checklist == nil {
		t.Checklist = []string{}
	}

	trips := append(store.Load(r.store, store.KeyTrips, []models.Trip{}), t)
	if err := store.Save(r.store, store.KeyTrips, trips); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// TripPatch is a partial update; nil fields are left unchanged. Status is
// not patchable; it is re-derived after the merge.
type TripPatch struct {
	Destination *string
	StartDate   *string
	EndDate     *string
	Description *string
	Type        *models.TripType
	Budget      *string
	Notes       *string
}

// Update merges patch into the trip with the given id and re-derives its
// status. An unknown id or an unparsable patched date is a silent no-op.
func (r *Trips) Update(id int64, patch TripPatch) error {
	trips := store.Load(r.store, store.KeyTrips, []models.Trip{})
	for i := range trips {
		if trips[i].ID != id {
			continue
		}
		if patch.StartDate != nil {
			if _, err := dates.ParseLocal(*patch.StartDate); err != nil {
				return nil
			}
			trips[i].StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			if _, err := dates.ParseLocal(*patch.EndDate); err != nil {
				return nil
			}
			trips[i].EndDate = *patch.EndDate
		}
		if patch.Destination != nil {
			trips[i].Destination = *patch.Destination
		}
		if patch.Description != nil {
			trips[i].Description = *patch.Description
		}
		if patch.Type != nil {
			trips[i].Type = *patch.Type
		}
		if patch.Budget != nil {
			trips[i].Budget = *patch.Budget
		}
		if patch.Notes != nil {
			trips[i].Notes = *patch.Notes
		}
		trips[i].Status = StatusFor(trips[i], r.clock)
		return store.Save(r.store, store.KeyTrips, trips)
	}
	return nil
}

// AddMemory appends a memory line to the trip.
func (r *Trips) AddMemory(id int64, memory string) error {
	trips := store.Load(r.store, store.KeyTrips, []models.Trip{})
	for i := range trips {
		if trips[i].ID == id {
			trips[i].Memories = append(trips[i].Memories, memory)
			return store.Save(r.store, store.KeyTrips, trips)
		}
	}
	return apperr.ErrNotFound
}

// AddChecklistItem appends a planning item to the trip.
func (r *Trips) AddChecklistItem(id int64, item string) error {
	trips := store.Load(r.store, store.KeyTrips, []models.Trip{})
	for i := range trips {
		if trips[i].ID == id {
			trips[i].Checklist = append(trips[i].Checklist, item)
			return store.Save(r.store, store.KeyTrips, trips)
		}
	}
	return apperr.ErrNotFound
}

// Delete removes the trip with the given id. Idempotent.
func (r *Trips) Delete(id int64) error {
	trips := store.Load(r.store, store.KeyTrips, []models.Trip{})
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return nil
	}
	return store.Save(r.store, store.KeyTrips, kept)
}

// TripStats summarizes the trip log.
type TripStats struct {
	Total        int `json:"total"`
	Destinations int `json:"destinations"`
	TotalDays    int `json:"totalDays"`
}

// Stats counts trips, distinct destinations, and the inclusive day total
// across all trips.
func (r *Trips) Stats() TripStats {
	trips := r.All()
	dests := make(map[string]struct{})
	days := 0
	for _, t := range trips {
		dests[t.Destination] = struct{}{}
		days += dates.DurationDays(t.StartDate, t.EndDate)
	}
	return TripStats{Total: len(trips), Destinations: len(dests), TotalDays: days}
}

// Count returns the raw stored record count with no status refresh applied.
func (r *Trips) Count() int {
	return len(store.Load(r.store, store.KeyTrips, []models.Trip{}))
}
