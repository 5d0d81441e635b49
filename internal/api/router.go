package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/wunjo/internal/service"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /stream inside the auth group.
func NewRouter(svc *service.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Notes CRUD.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Patch("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	// Wishes, including the completed collection.
	r.Get("/wishes", h.ListWishes)
	r.Post("/wishes", h.CreateWish)
	r.Get("/wishes/completed", h.CompletedWishes)
	r.Get("/wishes/{id}", h.GetWish)
	r.Patch("/wishes/{id}", h.UpdateWish)
	r.Post("/wishes/{id}/complete", h.CompleteWish)
	r.Delete("/wishes/{id}", h.DeleteWish)

	// Events and the calendar views.
	r.Get("/events", h.ListEvents)
	r.Post("/events", h.CreateEvent)
	r.Get("/events/upcoming", h.UpcomingEvents)
	r.Get("/events/calendar", h.EventCalendar)
	r.Get("/events/{id}", h.GetEvent)
	r.Patch("/events/{id}", h.UpdateEvent)
	r.Delete("/events/{id}", h.DeleteEvent)

	// Photo gallery.
	r.Get("/photos", h.ListPhotos)
	r.Post("/photos", h.CreatePhoto)
	r.Get("/photos/{id}", h.GetPhoto)
	r.Post("/photos/{id}/favorite", h.ToggleFavorite)
	r.Delete("/photos/{id}", h.DeletePhoto)

	// Trips.
	r.Get("/trips", h.ListTrips)
	r.Post("/trips", h.CreateTrip)
	r.Get("/trips/stats", h.TripStats)
	r.Get("/trips/{id}", h.GetTrip)
	r.Patch("/trips/{id}", h.UpdateTrip)
	r.Post("/trips/{id}/memories", h.AddTripMemory)
	r.Post("/trips/{id}/checklist", h.AddTripChecklistItem)
	r.Delete("/trips/{id}", h.DeleteTrip)

	// Achievements and the dashboard.
	r.Get("/achievements", h.AchievementTimeline)
	r.Get("/achievements/stats", h.AchievementStats)
	r.Get("/achievements/categories", h.AchievementCategories)
	r.Get("/achievements/recent", h.RecentAchievements)
	r.Get("/dashboard", h.Dashboard)

	// Settings.
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.SaveSettings)
	r.Delete("/settings", h.ClearSettings)
	r.Post("/settings/dates", h.AddImportantDate)
	r.Delete("/settings/dates/{id}", h.RemoveImportantDate)
	r.Get("/settings/export", h.ExportSettings)
	r.Post("/settings/import", h.ImportSettings)
	r.Get("/settings/days-together", h.DaysTogether)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/stream", sseHandler.ServeHTTP)
	}

	return r
}
