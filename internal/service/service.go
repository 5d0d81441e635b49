// Package service coordinates the repositories, aggregators, and settings
// store behind one mutex, preserving the single-writer model the storage
// layer assumes while the HTTP and MCP surfaces run concurrent callers.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/starford/wunjo/internal/achievements"
	"github.com/starford/wunjo/internal/dashboard"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
	"github.com/starford/wunjo/internal/settings"
	"github.com/starford/wunjo/internal/sse"
	"github.com/starford/wunjo/internal/store"
)

// Publisher receives change notifications after each mutation. *sse.Broker
// satisfies it; tests pass nil.
type Publisher interface {
	PublishChange(entity, action string, id int64)
}

// Service is the coordination layer for all collections.
type Service struct {
	mu sync.Mutex

	notes    *repo.Notes
	wishes   *repo.Wishes
	events   *repo.Events
	photos   *repo.Photos
	trips    *repo.Trips
	timeline *achievements.Aggregator
	dash     *dashboard.Aggregator
	settings *settings.Store

	broker Publisher
}

// New wires a service over the given provider. broker may be nil.
func New(p store.Provider, clock models.Clock, broker Publisher) *Service {
	if clock == nil {
		clock = models.RealClock{}
	}
	ids := models.NewMonotonicID(clock)

	notes := repo.NewNotes(p, clock, ids)
	wishes := repo.NewWishes(p, clock, ids)
	events := repo.NewEvents(p, clock, ids)
	photos := repo.NewPhotos(p, clock, ids)
	trips := repo.NewTrips(p, clock, ids)

	return &Service{
		notes:    notes,
		wishes:   wishes,
		events:   events,
		photos:   photos,
		trips:    trips,
		timeline: achievements.New(wishes, events, trips, clock),
		dash:     dashboard.New(notes, wishes, events, photos, trips),
		settings: settings.NewStore(p, clock, ids),
		broker:   broker,
	}
}

func (s *Service) publish(entity, action string, id int64) {
	if s.broker != nil {
		s.broker.PublishChange(entity, action, id)
	}
}

// Notes.

// ListNotes returns a filtered view of the notes collection.
func (s *Service) ListNotes(_ context.Context, f repo.Filter) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.List(f)
}

// GetNote returns one note by id.
func (s *Service) GetNote(_ context.Context, id int64) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Get(id)
}

// CreateNote stores a new note.
func (s *Service) CreateNote(_ context.Context, n models.Note) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.notes.Create(n)
	if err != nil {
		return models.Note{}, err
	}
	s.publish("note", "created", created.ID)
	return created, nil
}

// UpdateNote merges a partial update into a note.
func (s *Service) UpdateNote(_ context.Context, id int64, patch repo.NotePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notes.Update(id, patch); err != nil {
		return err
	}
	s.publish("note", "updated", id)
	return nil
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notes.Delete(id); err != nil {
		return err
	}
	s.publish("note", "deleted", id)
	return nil
}

// Wishes.

// ListWishes returns a filtered view of the active wishes.
func (s *Service) ListWishes(_ context.Context, f repo.Filter) []models.Wish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishes.List(f)
}

// CompletedWishes returns the completed collection.
func (s *Service) CompletedWishes(_ context.Context) []models.Wish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishes.Completed()
}

// GetWish returns one active wish by id.
func (s *Service) GetWish(_ context.Context, id int64) (*models.Wish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishes.Get(id)
}

// CreateWish stores a new wish.
func (s *Service) CreateWish(_ context.Context, w models.Wish) (models.Wish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.wishes.Create(w)
	if err != nil {
		return models.Wish{}, err
	}
	s.publish("wish", "created", created.ID)
	return created, nil
}

// UpdateWish merges a partial update into an active wish.
func (s *Service) UpdateWish(_ context.Context, id int64, patch repo.WishPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.wishes.Update(id, patch); err != nil {
		return err
	}
	s.publish("wish", "updated", id)
	return nil
}

// CompleteWish moves a wish into the completed collection.
func (s *Service) CompleteWish(_ context.Context, id int64) (*models.Wish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done, err := s.wishes.Complete(id)
	if err != nil {
		return nil, err
	}
	s.publish("wish", "completed", id)
	return done, nil
}

// DeleteWish removes an active wish.
func (s *Service) DeleteWish(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.wishes.Delete(id); err != nil {
		return err
	}
	s.publish("wish", "deleted", id)
	return nil
}

// Events.

// ListEvents returns a filtered view of the events collection.
func (s *Service) ListEvents(_ context.Context, f repo.Filter) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.List(f)
}

// UpcomingEvents returns the two-tier upcoming view.
func (s *Service) UpcomingEvents(_ context.Context) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Upcoming()
}

// EventCalendar reports which days of a month carry events.
func (s *Service) EventCalendar(_ context.Context, year int, month time.Month) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Calendar(year, month)
}

// GetEvent returns one event by id.
func (s *Service) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Get(id)
}

// CreateEvent stores a new event.
func (s *Service) CreateEvent(_ context.Context, e models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.events.Create(e)
	if err != nil {
		return models.Event{}, err
	}
	s.publish("event", "created", created.ID)
	return created, nil
}

// UpdateEvent merges a partial update into an event.
func (s *Service) UpdateEvent(_ context.Context, id int64, patch repo.EventPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.events.Update(id, patch); err != nil {
		return err
	}
	s.publish("event", "updated", id)
	return nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.events.Delete(id); err != nil {
		return err
	}
	s.publish("event", "deleted", id)
	return nil
}

// Photos.

// ListPhotos returns a filtered view of the gallery.
func (s *Service) ListPhotos(_ context.Context, f repo.Filter) []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photos.List(f)
}

// GetPhoto returns one photo by id.
func (s *Service) GetPhoto(_ context.Context, id int64) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photos.Get(id)
}

// CreatePhoto stores a new photo.
func (s *Service) CreatePhoto(_ context.Context, p models.Photo) (models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.photos.Create(p)
	if err != nil {
		return models.Photo{}, err
	}
	s.publish("photo", "created", created.ID)
	return created, nil
}

// ToggleFavorite flips a photo's favorite flag.
func (s *Service) ToggleFavorite(_ context.Context, id int64) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	photo, err := s.photos.ToggleFavorite(id)
	if err != nil {
		return nil, err
	}
	s.publish("photo", "updated", id)
	return photo, nil
}

// DeletePhoto removes a photo.
func (s *Service) DeletePhoto(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.photos.Delete(id); err != nil {
		return err
	}
	s.publish("photo", "deleted", id)
	return nil
}

// Trips.

// ListTrips returns trips with freshly derived statuses, optionally
// filtered by status.
func (s *Service) ListTrips(_ context.Context, status models.TripStatus) []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips.List(status)
}

// GetTrip returns one trip by id.
func (s *Service) GetTrip(_ context.Context, id int64) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips.Get(id)
}

// CreateTrip stores a new trip with a derived status.
func (s *Service) CreateTrip(_ context.Context, t models.Trip) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.trips.Create(t)
	if err != nil {
		return models.Trip{}, err
	}
	s.publish("trip", "created", created.ID)
	return created, nil
}

// UpdateTrip merges a partial update into a trip and re-derives its status.
func (s *Service) UpdateTrip(_ context.Context, id int64, patch repo.TripPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.trips.Update(id, patch); err != nil {
		return err
	}
	s.publish("trip", "updated", id)
	return nil
}

// AddTripMemory appends a memory line to a trip.
func (s *Service) AddTripMemory(_ context.Context, id int64, memory string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.trips.AddMemory(id, memory); err != nil {
		return err
	}
	s.publish("trip", "updated", id)
	return nil
}

// AddTripChecklistItem appends a planning item to a trip.
func (s *Service) AddTripChecklistItem(_ context.Context, id int64, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.trips.AddChecklistItem(id, item); err != nil {
		return err
	}
	s.publish("trip", "updated", id)
	return nil
}

// DeleteTrip removes a trip.
func (s *Service) DeleteTrip(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.trips.Delete(id); err != nil {
		return err
	}
	s.publish("trip", "deleted", id)
	return nil
}

// TripStats summarizes the trip log.
func (s *Service) TripStats(_ context.Context) repo.TripStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips.Stats()
}

// Achievements.

// AchievementTimeline recomputes the unified completed timeline.
func (s *Service) AchievementTimeline(_ context.Context) []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.Timeline()
}

// AchievementStats summarizes the timeline.
func (s *Service) AchievementStats(_ context.Context) achievements.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.Stats()
}

// AchievementCategoryStats buckets the timeline by category.
func (s *Service) AchievementCategoryStats(_ context.Context) achievements.CategoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.CategoryStats()
}

// RecentAchievements returns the n most recent timeline entries.
func (s *Service) RecentAchievements(_ context.Context, n int) []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline.Recent(n)
}

// Dashboard.

// Dashboard assembles the summary view.
func (s *Service) Dashboard(_ context.Context) dashboard.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dash.Summary()
}

// Settings.

// Settings returns the merged settings.
func (s *Service) Settings(_ context.Context) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Get()
}

// SaveSettings replaces the stored settings wholesale.
func (s *Service) SaveSettings(_ context.Context, cfg models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settings.Save(cfg); err != nil {
		return err
	}
	s.publish("settings", "updated", 0)
	return nil
}

// AddImportantDate appends a milestone to the settings blob.
func (s *Service) AddImportantDate(_ context.Context, title, date string, dtype models.DateType) (*models.ImportantDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.settings.AddImportantDate(title, date, dtype)
	if err != nil {
		return nil, err
	}
	s.publish("settings", "updated", d.ID)
	return d, nil
}

// RemoveImportantDate deletes a milestone from the settings blob.
func (s *Service) RemoveImportantDate(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settings.RemoveImportantDate(id); err != nil {
		return err
	}
	s.publish("settings", "updated", id)
	return nil
}

// ExportSettings serializes the settings object for download.
func (s *Service) ExportSettings(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Export()
}

// ImportSettings replaces the settings from a backup file.
func (s *Service) ImportSettings(_ context.Context, data []byte) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.settings.Import(data)
	if err != nil {
		return models.Settings{}, err
	}
	s.publish("settings", "updated", 0)
	return cfg, nil
}

// ClearSettings removes the settings key and resets to defaults. The
// entity collections are left untouched.
func (s *Service) ClearSettings(_ context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.settings.Clear()
	if err != nil {
		return models.Settings{}, err
	}
	s.publish("settings", "updated", 0)
	return cfg, nil
}

// DaysTogether returns whole days since the relationship start.
func (s *Service) DaysTogether(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.DaysTogether()
}

var _ Publisher = (*sse.Broker)(nil)
