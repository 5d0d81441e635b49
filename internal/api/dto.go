package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/wunjo/internal/models"
)

// dateRule validates a YYYY-MM-DD calendar day.
var dateRule = validation.Date("2006-01-02")

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title    string              `json:"title"`
	Content  string              `json:"content"`
	Category models.NoteCategory `json:"category"`
	Mood     models.Mood         `json:"mood"`
}

// Validate validates the request. An unknown mood is not an error; it
// falls back to the default on write.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Category, validation.Required,
			validation.In(models.NoteMemories, models.NoteIdeas, models.NoteImportant)),
	)
}

// UpdateNoteRequest is the partial-update body for a note.
type UpdateNoteRequest struct {
	Title    *string              `json:"title"`
	Content  *string              `json:"content"`
	Category *models.NoteCategory `json:"category"`
	Mood     *models.Mood         `json:"mood"`
}

// CreateWishRequest is the request body for creating a wish.
type CreateWishRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    models.WishCategory `json:"category"`
	Priority    models.Priority     `json:"priority"`
	Estimate    string              `json:"estimate"`
}

// Validate validates the request.
func (r CreateWishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Category, validation.Required,
			validation.In(models.WishPlaces, models.WishExperiences, models.WishGifts, models.WishGoals)),
		validation.Field(&r.Priority,
			validation.In(models.PriorityLow, models.PriorityMedium, models.PriorityHigh)),
	)
}

// UpdateWishRequest is the partial-update body for a wish.
type UpdateWishRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Category    *models.WishCategory `json:"category"`
	Priority    *models.Priority     `json:"priority"`
	Estimate    *string              `json:"estimate"`
}

// CreateEventRequest is the request body for creating an event.
type CreateEventRequest struct {
	Title       string               `json:"title"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Category    models.EventCategory `json:"category"`
	Description string               `json:"description"`
}

// Validate validates the request.
func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Date, validation.Required, dateRule),
		validation.Field(&r.Category, validation.Required,
			validation.In(models.EventDate, models.EventAnniversary, models.EventTravel, models.EventSpecial)),
	)
}

// UpdateEventRequest is the partial-update body for an event.
type UpdateEventRequest struct {
	Title       *string               `json:"title"`
	Date        *string               `json:"date"`
	Time        *string               `json:"time"`
	Category    *models.EventCategory `json:"category"`
	Description *string               `json:"description"`
}

// CreatePhotoRequest is the request body for adding a photo. Image is a
// data URI; no size cap is enforced on the encoded payload.
type CreatePhotoRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	Category    models.PhotoCategory `json:"category"`
	Location    string               `json:"location"`
	Image       string               `json:"image"`
}

// Validate validates the request. Date may be empty; it defaults to today.
func (r CreatePhotoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Date, dateRule),
		validation.Field(&r.Category, validation.Required,
			validation.In(models.PhotoSelfie, models.PhotoDate, models.PhotoTravel, models.PhotoSpecial)),
		validation.Field(&r.Image, validation.Required, is.DataURI),
	)
}

// CreateTripRequest is the request body for creating a trip. Status is
// never accepted from the caller; it is derived from the date range.
type CreateTripRequest struct {
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Description string          `json:"description"`
	Type        models.TripType `json:"type"`
	Budget      string          `json:"budget"`
	Notes       string          `json:"notes"`
}

// Validate validates the request.
func (r CreateTripRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Destination, validation.Required),
		validation.Field(&r.StartDate, validation.Required, dateRule),
		validation.Field(&r.EndDate, validation.Required, dateRule),
		validation.Field(&r.Type, validation.Required,
			validation.In(models.TripRomantic, models.TripAdventure, models.TripRelax, models.TripCultural, models.TripFamily)),
	)
}

// UpdateTripRequest is the partial-update body for a trip.
type UpdateTripRequest struct {
	Destination *string          `json:"destination"`
	StartDate   *string          `json:"startDate"`
	EndDate     *string          `json:"endDate"`
	Description *string          `json:"description"`
	Type        *models.TripType `json:"type"`
	Budget      *string          `json:"budget"`
	Notes       *string          `json:"notes"`
}

// TripItemRequest carries one memory or checklist line.
type TripItemRequest struct {
	Text string `json:"text"`
}

// Validate validates the request.
func (r TripItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

// ImportantDateRequest is the request body for adding a milestone.
type ImportantDateRequest struct {
	Title string          `json:"title"`
	Date  string          `json:"date"`
	Type  models.DateType `json:"type"`
}

// Validate validates the request.
func (r ImportantDateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Date, validation.Required, dateRule),
	)
}
