package api

import (
	"net/http"

	"github.com/starford/wunjo/internal/models"
)

// ListPhotos handles GET /api/photos. Besides the regular categories the
// filter accepts the pseudo-category "favorites".
//
//	@Summary		List photos
//	@Tags			photos
//	@Produce		json
//	@Param			category	query	string	false	"Filter by category or favorites"
//	@Param			q			query	string	false	"Search in title and location"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/photos [get]
func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos := h.svc.ListPhotos(r.Context(), listFilter(r))
	if photos == nil {
		photos = []models.Photo{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"photos": photos, "total": len(photos)})
}

// GetPhoto handles GET /api/photos/{id}.
//
//	@Summary		Get a single photo
//	@Tags			photos
//	@Produce		json
//	@Param			id	path		int	true	"Photo id"
//	@Success		200	{object}	models.Photo
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos/{id} [get]
func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	photo, err := h.svc.GetPhoto(r.Context(), id)
	if err != nil {
		writeError(w, "get photo", err)
		return
	}
	writeJSON(w, http.StatusOK, photo)
}

// CreatePhoto handles POST /api/photos.
//
//	@Summary		Add a photo
//	@Tags			photos
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreatePhotoRequest	true	"Photo to add"
//	@Success		201		{object}	models.Photo
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos [post]
func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req CreatePhotoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	photo, err := h.svc.CreatePhoto(r.Context(), models.Photo{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Location:    req.Location,
		Image:       req.Image,
	})
	if err != nil {
		writeError(w, "create photo", err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

// ToggleFavorite handles POST /api/photos/{id}/favorite.
//
//	@Summary		Toggle the favorite flag on a photo
//	@Tags			photos
//	@Produce		json
//	@Param			id	path		int	true	"Photo id"
//	@Success		200	{object}	models.Photo
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos/{id}/favorite [post]
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	photo, err := h.svc.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeError(w, "toggle favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, photo)
}

// DeletePhoto handles DELETE /api/photos/{id}.
//
//	@Summary		Delete a photo
//	@Tags			photos
//	@Param			id		path	int		true	"Photo id"
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		204
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos/{id} [delete]
func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !confirmed(w, r) {
		return
	}
	if err := h.svc.DeletePhoto(r.Context(), id); err != nil {
		writeError(w, "delete photo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
