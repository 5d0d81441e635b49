package api

import (
	"net/http"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
)

// ListTrips handles GET /api/trips. Statuses are refreshed against the
// current day before the list is returned.
//
//	@Summary		List trips
//	@Tags			trips
//	@Produce		json
//	@Param			status	query	string	false	"Filter by derived status"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/trips [get]
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	status := models.TripStatus(r.URL.Query().Get("status"))
	trips := h.svc.ListTrips(r.Context(), status)
	if trips == nil {
		trips = []models.Trip{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"trips": trips, "total": len(trips)})
}

// TripStats handles GET /api/trips/stats.
//
//	@Summary		Trip totals
//	@Tags			trips
//	@Produce		json
//	@Success		200	{object}	repo.TripStats
//	@Security		BearerAuth
//	@Router			/trips/stats [get]
func (h *Handler) TripStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.TripStats(r.Context()))
}

// GetTrip handles GET /api/trips/{id}.
//
//	@Summary		Get a single trip
//	@Tags			trips
//	@Produce		json
//	@Param			id	path		int	true	"Trip id"
//	@Success		200	{object}	models.Trip
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/{id} [get]
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	trip, err := h.svc.GetTrip(r.Context(), id)
	if err != nil {
		writeError(w, "get trip", err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// CreateTrip handles POST /api/trips. The status field of the body, if
// any, is ignored; the stored status is derived from the date range.
//
//	@Summary		Create a new trip
//	@Tags			trips
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateTripRequest	true	"Trip to create"
//	@Success		201		{object}	models.Trip
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips [post]
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	trip, err := h.svc.CreateTrip(r.Context(), models.Trip{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Type:        req.Type,
		Budget:      req.Budget,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, "create trip", err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// UpdateTrip handles PATCH /api/trips/{id}. The status is re-derived
// after the merge.
//
//	@Summary		Update a trip
//	@Tags			trips
//	@Accept			json
//	@Param			id		path	int					true	"Trip id"
//	@Param			body	body	UpdateTripRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/{id} [patch]
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req UpdateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.svc.UpdateTrip(r.Context(), id, repo.TripPatch{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Type:        req.Type,
		Budget:      req.Budget,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, "update trip", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTripMemory handles POST /api/trips/{id}/memories.
//
//	@Summary		Append a memory to a trip
//	@Tags			trips
//	@Accept			json
//	@Param			id		path	int				true	"Trip id"
//	@Param			body	body	TripItemRequest	true	"Memory text"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/{id}/memories [post]
func (h *Handler) AddTripMemory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req TripItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.AddTripMemory(r.Context(), id, req.Text); err != nil {
		writeError(w, "add trip memory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTripChecklistItem handles POST /api/trips/{id}/checklist.
//
//	@Summary		Append a checklist item to a trip
//	@Tags			trips
//	@Accept			json
//	@Param			id		path	int				true	"Trip id"
//	@Param			body	body	TripItemRequest	true	"Checklist text"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/{id}/checklist [post]
func (h *Handler) AddTripChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req TripItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.AddTripChecklistItem(r.Context(), id, req.Text); err != nil {
		writeError(w, "add trip checklist item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrip handles DELETE /api/trips/{id}.
//
//	@Summary		Delete a trip
//	@Tags			trips
//	@Param			id		path	int		true	"Trip id"
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		204
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/{id} [delete]
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmed(w, r) {
		return
	}
	if err := h.svc.DeleteTrip(r.Context(), id); err != nil {
		writeError(w, "delete trip", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
