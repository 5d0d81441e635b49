// Package settings owns the settings blob: appearance, notifications, the
// couple profile, and important dates. Every read merges stored JSON onto
// the defaults field-by-field so missing or legacy fields self-heal.
package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/dates"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
)

// Store owns the settings key.
type Store struct {
	store store.Provider
	clock models.Clock
	ids   models.IDGenerator
}

// NewStore creates the settings store.
func NewStore(p store.Provider, clock models.Clock, ids models.IDGenerator) *Store {
	return &Store{store: p, clock: clock, ids: ids}
}

// rawSettings mirrors models.Settings with optional fields so a partial or
// legacy blob merges onto defaults instead of zeroing what it omits.
type rawSettings struct {
	Theme          *models.Theme          `json:"theme"`
	Color          *string                `json:"color"`
	Notifications  *rawNotifications      `json:"notifications"`
	Couple         *rawCouple             `json:"couple"`
	ImportantDates []models.ImportantDate `json:"importantDates"`
}

type rawNotifications struct {
	EventReminders          *bool `json:"eventReminders"`
	AnniversaryReminders    *bool `json:"anniversaryReminders"`
	AchievementCelebrations *bool `json:"achievementCelebrations"`
}

type rawCouple struct {
	Partner1Name      *string `json:"partner1Name"`
	Partner2Name      *string `json:"partner2Name"`
	RelationshipStart *string `json:"relationshipStart"`
	Description       *string `json:"description"`
}

// merge applies raw onto the defaults, field by field.
func merge(raw rawSettings) models.Settings {
	s := models.DefaultSettings()
	if raw.Theme != nil {
		s.Theme = *raw.Theme
	}
	if raw.Color != nil {
		s.Color = *raw.Color
	}
	if n := raw.Notifications; n != nil {
		if n.EventReminders != nil {
			s.Notifications.EventReminders = *n.EventReminders
		}
		if n.AnniversaryReminders != nil {
			s.Notifications.AnniversaryReminders = *n.AnniversaryReminders
		}
		if n.AchievementCelebrations != nil {
			s.Notifications.AchievementCelebrations = *n.AchievementCelebrations
		}
	}
	if c := raw.Couple; c != nil {
		if c.Partner1Name != nil {
			s.Couple.Partner1Name = *c.Partner1Name
		}
		if c.Partner2Name != nil {
			s.Couple.Partner2Name = *c.Partner2Name
		}
		if c.RelationshipStart != nil {
			s.Couple.RelationshipStart = *c.RelationshipStart
		}
		if c.Description != nil {
			s.Couple.Description = *c.Description
		}
	}
	if raw.ImportantDates != nil {
		s.ImportantDates = raw.ImportantDates
	}
	return s
}

// Get returns the merged settings. A missing or corrupt blob yields the
// defaults.
func (s *Store) Get() models.Settings {
	data, err := s.store.Get(store.KeySettings)
	if err != nil {
		return models.DefaultSettings()
	}
	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.DefaultSettings()
	}
	return merge(raw)
}

// Save persists the settings wholesale.
func (s *Store) Save(cfg models.Settings) error {
	if cfg.ImportantDates == nil {
		cfg.ImportantDates = []models.ImportantDate{}
	}
	return store.Save(s.store, store.KeySettings, cfg)
}

// AddImportantDate appends a milestone. Title and date are required; a
// missing field aborts before any mutation.
func (s *Store) AddImportantDate(title, date string, dtype models.DateType) (*models.ImportantDate, error) {
	title = strings.TrimSpace(title)
	if title == "" || date == "" {
		return nil, apperr.ErrInvalid
	}
	if _, err := dates.ParseLocal(date); err != nil {
		return nil, apperr.ErrInvalid
	}
	if dtype == "" {
		dtype = models.DateSpecial
	}

	cfg := s.Get()
	d := models.ImportantDate{
		ID:    s.ids.NextID(),
		Title: title,
		Date:  date,
		Type:  dtype,
	}
	cfg.ImportantDates = append(cfg.ImportantDates, d)
	if err := s.Save(cfg); err != nil {
		return nil, err
	}
	return &d, nil
}

// RemoveImportantDate deletes the milestone with the given id. Idempotent.
func (s *Store) RemoveImportantDate(id int64) error {
	cfg := s.Get()
	kept := cfg.ImportantDates[:0]
	for _, d := range cfg.ImportantDates {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(cfg.ImportantDates) {
		return nil
	}
	cfg.ImportantDates = kept
	return s.Save(cfg)
}

// Export serializes the merged settings object as indented JSON. Entity
// collections are not part of a settings backup.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Get(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("settings: export: %w", err)
	}
	return data, nil
}

// Import parses a backup, merges it onto the defaults field-by-field, and
// replaces the stored settings wholesale. Fields the file omits keep their
// defaults; only an unparsable file is rejected, with no state change.
func (s *Store) Import(data []byte) (models.Settings, error) {
	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Settings{}, fmt.Errorf("settings: import: %w", apperr.ErrInvalid)
	}
	cfg := merge(raw)
	if err := s.Save(cfg); err != nil {
		return models.Settings{}, err
	}
	return cfg, nil
}

// Clear removes the settings key and resets to defaults. The entity
// collections are not touched; only settings data is reset.
func (s *Store) Clear() (models.Settings, error) {
	if err := s.store.Delete(store.KeySettings); err != nil {
		return models.Settings{}, err
	}
	cfg := models.DefaultSettings()
	if err := s.Save(cfg); err != nil {
		return models.Settings{}, err
	}
	return cfg, nil
}

// DaysTogether returns whole days since the relationship start, or 0 when
// unset or in the future.
func (s *Store) DaysTogether() int {
	start := s.Get().Couple.RelationshipStart
	if start == "" {
		return 0
	}
	d, err := dates.ParseLocal(start)
	if err != nil {
		return 0
	}
	days := int(s.clock.Now().Sub(d).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
