package models

// The category, mood, priority, and status vocabularies are defined once
// here and referenced by every repository and handler. Unknown values read
// from storage fall back to the documented default at the point of use.

// Mood is the feeling attached to a note.
type Mood string

// Note moods.
const (
	MoodHappy      Mood = "happy"
	MoodLove       Mood = "love"
	MoodExcited    Mood = "excited"
	MoodPeaceful   Mood = "peaceful"
	MoodThoughtful Mood = "thoughtful"
)

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodLove, MoodExcited, MoodPeaceful, MoodThoughtful:
		return true
	}
	return false
}

// Normalize returns m when valid, otherwise the default mood.
func (m Mood) Normalize() Mood {
	if m.Valid() {
		return m
	}
	return MoodHappy
}

// NoteCategory classifies a note.
type NoteCategory string

// Note categories.
const (
	NoteMemories  NoteCategory = "memories"
	NoteIdeas     NoteCategory = "ideas"
	NoteImportant NoteCategory = "important"
)

// Valid reports whether c is a known note category.
func (c NoteCategory) Valid() bool {
	switch c {
	case NoteMemories, NoteIdeas, NoteImportant:
		return true
	}
	return false
}

// WishCategory classifies a wish (and a wish-origin achievement).
type WishCategory string

// Wish categories.
const (
	WishPlaces      WishCategory = "places"
	WishExperiences WishCategory = "experiences"
	WishGifts       WishCategory = "gifts"
	WishGoals       WishCategory = "goals"
)

// Priority is the urgency of a wish.
type Priority string

// Wish priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// EventCategory classifies a calendar event.
type EventCategory string

// Event categories.
const (
	EventDate        EventCategory = "date"
	EventAnniversary EventCategory = "anniversary"
	EventTravel      EventCategory = "travel"
	EventSpecial     EventCategory = "special"
)

// PhotoCategory classifies a gallery photo.
type PhotoCategory string

// Photo categories.
const (
	PhotoSelfie  PhotoCategory = "selfie"
	PhotoDate    PhotoCategory = "date"
	PhotoTravel  PhotoCategory = "travel"
	PhotoSpecial PhotoCategory = "special"
)

// TripType classifies a trip.
type TripType string

// Trip types.
const (
	TripRomantic  TripType = "romantic"
	TripAdventure TripType = "adventure"
	TripRelax     TripType = "relax"
	TripCultural  TripType = "cultural"
	TripFamily    TripType = "family"
)

// TripStatus is the derived lifecycle state of a trip.
type TripStatus string

// Trip statuses.
const (
	TripPlanned   TripStatus = "planned"
	TripCurrent   TripStatus = "current"
	TripCompleted TripStatus = "completed"
)

// AchievementType tags the origin of a timeline entry.
type AchievementType string

// Achievement origins. Wish-origin entries carry an empty type in storage
// for compatibility with records written before the type field existed.
const (
	AchievementWish  AchievementType = "wish"
	AchievementEvent AchievementType = "event"
	AchievementTrip  AchievementType = "trip"
)

// Theme is the UI theme stored in settings.
type Theme string

// Themes.
const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeRomantic Theme = "romantic"
)

// DateType classifies an important date.
type DateType string

// Important date types.
const (
	DateAnniversary DateType = "anniversary"
	DateFirst       DateType = "first"
	DateSpecial     DateType = "special"
)
