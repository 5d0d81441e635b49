// Package dashboard reports summary counts across the six collections.
package dashboard

import "github.com/starford/wunjo/internal/repo"

// Counts holds the raw stored record count per collection. No filtering or
// derived status is applied; a stale trip status does not change its count.
type Counts struct {
	Notes     int `json:"notes"`
	Wishes    int `json:"wishes"`
	Completed int `json:"completed"`
	Events    int `json:"events"`
	Photos    int `json:"photos"`
	Trips     int `json:"trips"`
}

// Aggregator reads every repository for the summary view.
type Aggregator struct {
	notes  *repo.Notes
	wishes *repo.Wishes
	events *repo.Events
	photos *repo.Photos
	trips  *repo.Trips
}

// New creates the dashboard aggregator.
func New(notes *repo.Notes, wishes *repo.Wishes, events *repo.Events, photos *repo.Photos, trips *repo.Trips) *Aggregator {
	return &Aggregator{notes: notes, wishes: wishes, events: events, photos: photos, trips: trips}
}

// Counts reads the six collection keys and reports their record counts.
func (a *Aggregator) Counts() Counts {
	return Counts{
		Notes:     a.notes.Count(),
		Wishes:    a.wishes.Count(),
		Completed: a.wishes.CompletedCount(),
		Events:    a.events.Count(),
		Photos:    a.photos.Count(),
		Trips:     a.trips.Count(),
	}
}

/// Summary is the dashboard payload: raw counts plus the per-page stat
// panels.
type Summary struct {
	Counts Counts          `json:"counts"`
	Trips  repo.TripStats  `json:"trips"`
	Photos repo.PhotoStats `json:"photos"`
}

// Summary assembles the full dashboard view.
func (a *Aggregator) Summary() Summary {
	return Summary{
		Counts: a.Counts(),
		Trips:  a.trips.Stats(),
		Photos: a.photos.Stats(),
	}
}
