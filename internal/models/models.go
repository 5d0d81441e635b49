// Package models defines the domain types for Wunjo.
package models

import "time"

// Note is a free-form journal entry with a mood and category.
type Note struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Mood      Mood         `json:"mood"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Wish is a bucket-list item. Once completed it moves out of the active
// wishes collection into the completed collection.
type Wish struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    WishCategory `json:"category"`
	Priority    Priority     `json:"priority"`
	Estimate    string       `json:"estimate,omitempty"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt string       `json:"completedAt,omitempty"`
}

// Event is a calendar entry. Date is a local calendar day in YYYY-MM-DD
// form; it must never be interpreted through a UTC timestamp parse.
type Event struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Time        string        `json:"time,omitempty"`
	Category    EventCategory `json:"category"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Photo is a gallery entry with the image stored inline as a data URI.
// No size cap is enforced on the encoded image.
type Photo struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date"`
	Category    PhotoCategory `json:"category"`
	Location    string        `json:"location,omitempty"`
	Image       string        `json:"image"`
	Checksum    string        `json:"checksum,omitempty"`
	IsFavorite  bool          `json:"isFavorite"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Trip is a planned, ongoing, or completed journey. Status is derived from
// the date range and the current day; stored values are refreshed on every
// listing and are never trusted from an external write.
type Trip struct {
	ID          int64      `json:"id"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Description string     `json:"description,omitempty"`
	Type        TripType   `json:"type"`
	Budget      string     `json:"budget,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	Memories    []string   `json:"memories"`
	Checklist   []string   `json:"checklist"`
}

// Achievement is one entry in the unified completed timeline. Only the
// wish-origin subset is ever persisted (under the completed key); event- and
// trip-origin entries are recomputed on every load.
type Achievement struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Type        AchievementType `json:"type"`
	Category    WishCategory    `json:"category,omitempty"`
	Priority    Priority        `json:"priority,omitempty"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Estimate    string          `json:"estimate,omitempty"`
	CompletedAt string          `json:"completedAt"`
	Score       int             `json:"score"`
}

// ImportantDate is a dated milestone kept inside the settings blob.
type ImportantDate struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Date  string   `json:"date"`
	Type  DateType `json:"type"`
}

// Notifications holds the three notification toggles.
type Notifications struct {
	EventReminders          bool `json:"eventReminders"`
	AnniversaryReminders    bool `json:"anniversaryReminders"`
	AchievementCelebrations bool `json:"achievementCelebrations"`
}

// Couple holds the couple profile.
type Couple struct {
	Partner1Name      string `json:"partner1Name"`
	Partner2Name      string `json:"partner2Name"`
	RelationshipStart string `json:"relationshipStart"`
	Description       string `json:"description"`
}

// Settings is the application settings blob. Loads always merge stored data
// onto DefaultSettings so missing or legacy fields self-heal.
type Settings struct {
	Theme          Theme           `json:"theme"`
	Color          string          `json:"color"`
	Notifications  Notifications   `json:"notifications"`
	Couple         Couple          `json:"couple"`
	ImportantDates []ImportantDate `json:"importantDates"`
}

// DefaultSettings returns the baseline settings every load merges onto.
func DefaultSettings() Settings {
	return Settings{
		Theme:          ThemeLight,
		Color:          "pink",
		Notifications:  Notifications{},
		Couple:         Couple{},
		ImportantDates: []ImportantDate{},
	}
}
