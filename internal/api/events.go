package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
)

// ListEvents handles GET /api/events.
//
//	@Summary		List events in authored order
//	@Tags			events
//	@Produce		json
//	@Param			category	query	string	false	"Filter by category"
//	@Param			q			query	string	false	"Search in title and description"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.svc.ListEvents(r.Context(), listFilter(r))
	if events == nil {
		events = []models.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events, "total": len(events)})
}

// UpcomingEvents handles GET /api/events/upcoming. When nothing is
// scheduled from today on, the five most recent past events are returned
// instead, newest first.
//
//	@Summary		List upcoming events
//	@Tags			events
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/events/upcoming [get]
func (h *Handler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events := h.svc.UpcomingEvents(r.Context())
	if events == nil {
		events = []models.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events, "total": len(events)})
}

// EventCalendar handles GET /api/events/calendar. Year and month default
// to the current ones.
//
//	@Summary		Days of a month that have events
//	@Tags			events
//	@Produce		json
//	@Param			year	query	int	false	"Calendar year"
//	@Param			month	query	int	false	"Calendar month (1-12)"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/events/calendar [get]
func (h *Handler) EventCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid year"))
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid month"))
			return
		}
		month = time.Month(m)
	}
	days := h.svc.EventCalendar(r.Context(), year, month)
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}

// GetEvent handles GET /api/events/{id}.
//
//	@Summary		Get a single event
//	@Tags			events
//	@Produce		json
//	@Param			id	path		int	true	"Event id"
//	@Success		200	{object}	models.Event
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/events/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	event, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, "get event", err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// CreateEvent handles POST /api/events.
//
//	@Summary		Create a new event
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateEventRequest	true	"Event to create"
//	@Success		201		{object}	models.Event
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/events [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	event, err := h.svc.CreateEvent(r.Context(), models.Event{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, "create event", err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PATCH /api/events/{id}.
//
//	@Summary		Update an event
//	@Tags			events
//	@Accept			json
//	@Param			id		path	int					true	"Event id"
//	@Param			body	body	UpdateEventRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/events/{id} [patch]
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.svc.UpdateEvent(r.Context(), id, repo.EventPatch{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, "update event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent handles DELETE /api/events/{id}.
//
//	@Summary		Delete an event
//	@Tags			events
//	@Param			id		path	int		true	"Event id"
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		204
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/events/{id} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmed(w, r) {
		return
	}
	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		writeError(w, "delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
