package repo

import (
	"sort"
	"time"

	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/dates"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// pastFallbackLimit is how many recent past events the upcoming view shows
// when nothing lies ahead.
const pastFallbackLimit = 5

// Events owns the events collection.
type Events struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewEvents creates the events repository.
func NewEvents(p store.Provider, clock models.Clock, ids models.IDGenerator) *Events {
	return &Events{store: p, clock: clock, ids: ids}
}

// All returns every event in authored order.
func (r *Events) All() []models.Event {
	return store.Load(r.store, store.KeyEvents, []models.Event{})
}

// List returns a filtered, non-mutating view of the collection.
func (r *Events) List(f Filter) []models.Event {
	var out []models.Event
	for _, e := range r.All() {
		if !matchCategory(f.Category, string(e.Category)) {
			continue
		}
		if !matchQuery(f.Query, e.Title, e.Description) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Get returns the event with the given id.
func (r *Events) Get(id int64) (*models.Event, error) {
	for _, e := range r.All() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Create assigns an id and creation time and appends the event.
func (r *Events) Create(e models.Event) (models.Event, error) {
	if _, err := dates.ParseLocal(e.Date); err != nil {
		return models.Event{}, apperr.ErrInvalid
	}
	e.ID = r.ids.NextID()
	e.CreatedAt = r.clock.Now()

	events := append(r.All(), e)
	if err := store.Save(r.store, store.KeyEvents, events); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// EventPatch is a partial update; nil fields are left unchanged.
type EventPatch struct {
	Title       *string
	Date        *string
	Time        *string
	Category    *models.EventCategory
	Description *string
}

// Update merges patch into the event with the given id. An unknown id or an
// unparsable patched date is a silent no-op.
func (r *Events) Update(id int64, patch EventPatch) error {
	events := r.All()
	for i := range events {
		if events[i].ID != id {
			continue
		}
		if patch.Date != nil {
			if _, err := dates.ParseLocal(*patch.Date); err != nil {
				return nil
			}
			events[i].Date = *patch.Date
		}
		if patch.Title != nil {
			events[i].Title = *patch.Title
		}
		if patch.Time != nil {
			events[i].Time = *patch.Time
		}
		if patch.Category != nil {
			events[i].Category = *patch.Category
		}
		if patch.Description != nil {
			events[i].Description = *patch.Description
		}
		return store.Save(r.store, store.KeyEvents, events)
	}
	return nil
}

// Delete removes the event with the given id. Idempotent.
func (r *Events) Delete(id int64) error {
	events := r.All()
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return nil
	}
	return store.Save(r.store, store.KeyEvents, kept)
}

// Upcoming returns events on or after today (local midnight), soonest
// first. When nothing lies ahead it falls back to the most recent past
// events, latest first. Events with unparsable dates are skipped. The
// two-tier policy is display behavior, not stored state.
func (r *Events) Upcoming() []models.Event {
	today := dates.Midnight(r.clock.Now())

	type dated struct {
		ev models.Event
		d  time.Time
	}
	var upcoming, past []dated
	for _, e := range r.All() {
		d, err := dates.ParseLocal(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(today) {
			upcoming = append(upcoming, dated{e, d})
		} else {
			past = append(past, dated{e, d})
		}
	}

	if len(upcoming) > 0 {
		sort.SliceStable(upcoming, func(i, j int) bool {
			return upcoming[i].d.Before(upcoming[j].d)
		})
		out := make([]models.Event, len(upcoming))
		for i, u := range upcoming {
			out[i] = u.ev
		}
		return out
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].d.After(past[j].d)
	})
	if len(past) > pastFallbackLimit {
		past = past[:pastFallbackLimit]
	}
	out := make([]models.Event, len(past))
	for i, p := range past {
		out[i] = p.ev
	}
	return out
}

// Past returns events strictly before today (local midnight), in authored
// order. The achievement aggregator borrows this read.
func (r *Events) Past() []models.Event {
	today := dates.Midnight(r.clock.Now())
	var out []models.Event
	for _, e := range r.All() {
		d, err := dates.ParseLocal(e.Date)
		if err != nil {
			continue
		}
		if d.Before(today) {
			out = append(out, e)
		}
	}
	return out
}

// Calendar reports which days of the given month carry at least one event,
// in ascending day order.
func (r *Events) Calendar(year int, month time.Month) []int {
	seen := make(map[int]struct{})
	for _, e := range r.All() {
		d, err := dates.ParseLocal(e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			seen[d.Day()] = struct{}{}
		}
	}
	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Count returns the raw stored record count.
func (r *Events) Count() int { return len(r.All()) }
