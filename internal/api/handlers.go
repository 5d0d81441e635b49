package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
	"github.com/starford/wunjo/internal/service"
)

// Handler holds API route handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// idParam extracts the {id} URL parameter. Returns false after writing a
// 400 response when it is missing or not numeric.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return 0, false
	}
	return id, true
}

// confirmed gates destructive endpoints: the caller must send
// ?confirm=true. No confirmation, no side effect.
func confirmed(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusConflict, errorBody("confirmation required"))
		return false
	}
	return true
}

// listFilter reads the shared category/q query parameters.
func listFilter(r *http.Request) repo.Filter {
	q := r.URL.Query()
	return repo.Filter{Category: q.Get("category"), Query: q.Get("q")}
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List notes
//	@Tags			notes
//	@Produce		json
//	@Param			category	query	string	false	"Filter by category"
//	@Param			q			query	string	false	"Search in title and content"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes := h.svc.ListNotes(r.Context(), listFilter(r))
	if notes == nil {
		notes = []models.Note{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": notes, "total": len(notes)})
}

// GetNote handles GET /api/notes/{id}.
//
//	@Summary		Get a single note
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		int	true	"Note id"
//	@Success		200	{object}	models.Note
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		writeError(w, "get note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /api/notes.
//
//	@Summary		Create a new note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateNoteRequest	true	"Note to create"
//	@Success		201		{object}	models.Note
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	note, err := h.svc.CreateNote(r.Context(), models.Note{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Mood:     req.Mood,
	})
	if err != nil {
		writeError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PATCH /api/notes/{id}. An unknown id changes nothing
// and still returns 204.
//
//	@Summary		Update a note
//	@Tags			notes
//	@Accept			json
//	@Param			id		path	int					true	"Note id"
//	@Param			body	body	UpdateNoteRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [patch]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.svc.UpdateNote(r.Context(), id, repo.NotePatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Mood:     req.Mood,
	})
	if err != nil {
		writeError(w, "update note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote handles DELETE /api/notes/{id}.
//
//	@Summary		Delete a note
//	@Tags			notes
//	@Param			id		path	int		true	"Note id"
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		204
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmed(w, r) {
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		writeError(w, "delete note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWishes handles GET /api/wishes.
//
//	@Summary		List open wishes
//	@Tags			wishes
//	@Produce		json
//	@Param			category	query	string	false	"Filter by category"
//	@Param			q			query	string	false	"Search in title and description"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/wishes [get]
func (h *Handler) ListWishes(w http.ResponseWriter, r *http.Request) {
	wishes := h.svc.ListWishes(r.Context(), listFilter(r))
	if wishes == nil {
		wishes = []models.Wish{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishes": wishes, "total": len(wishes)})
}

// CompletedWishes handles GET /api/wishes/completed.
//
//	@Summary		List completed wishes
//	@Tags			wishes
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/wishes/completed [get]
func (h *Handler) CompletedWishes(w http.ResponseWriter, r *http.Request) {
	completed := h.svc.CompletedWishes(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"completed": completed, "total": len(completed)})
}

// GetWish handles GET /api/wishes/{id}.
//
//	@Summary		Get a single wish
//	@Tags			wishes
//	@Produce		json
//	@Param			id	path		int	true	"Wish id"
//	@Success		200	{object}	models.Wish
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wishes/{id} [get]
func (h *Handler) GetWish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	wish, err := h.svc.GetWish(r.Context(), id)
	if err != nil {
		writeError(w, "get wish", err)
		return
	}
	writeJSON(w, http.StatusOK, wish)
}

// CreateWish handles POST /api/wishes.
//
//	@Summary		Create a new wish
//	@Tags			wishes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateWishRequest	true	"Wish to create"
//	@Success		201		{object}	models.Wish
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wishes [post]
func (h *Handler) CreateWish(w http.ResponseWriter, r *http.Request) {
	var req CreateWishRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	wish, err := h.svc.CreateWish(r.Context(), models.Wish{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Estimate:    req.Estimate,
	})
	if err != nil {
		writeError(w, "create wish", err)
		return
	}
	writeJSON(w, http.StatusCreated, wish)
}

// UpdateWish handles PATCH /api/wishes/{id}.
//
//	@Summary		Update a wish
//	@Tags			wishes
//	@Accept			json
//	@Param			id		path	int					true	"Wish id"
//	@Param			body	body	UpdateWishRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wishes/{id} [patch]
func (h *Handler) UpdateWish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req UpdateWishRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.svc.UpdateWish(r.Context(), id, repo.WishPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Estimate:    req.Estimate,
	})
	if err != nil {
		writeError(w, "update wish", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteWish handles POST /api/wishes/{id}/complete.
//
//	@Summary		Mark a wish as completed
//	@Tags			wishes
//	@Produce		json
//	@Param			id	path		int	true	"Wish id"
//	@Success		200	{object}	models.Wish
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wishes/{id}/complete [post]
func (h *Handler) CompleteWish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	done, err := h.svc.CompleteWish(r.Context(), id)
	if err != nil {
		writeError(w, "complete wish", err)
		return
	}
	writeJSON(w, http.StatusOK, done)
}

// DeleteWish handles DELETE /api/wishes/{id}.
//
//	@Summary		Delete a wish
//	@Tags			wishes
//	@Param			id		path	int		true	"Wish id"
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		204
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wishes/{id} [delete]
func (h *Handler) DeleteWish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmed(w, r) {
		return
	}
	if err := h.svc.DeleteWish(r.Context(), id); err != nil {
		writeError(w, "delete wish", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
