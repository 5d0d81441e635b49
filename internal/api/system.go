package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/starford/wunjo/internal/models"
)

// AchievementTimeline handles GET /api/achievements.
//
//	@Summary		Unified completed timeline
//	@Tags			achievements
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/achievements [get]
func (h *Handler) AchievementTimeline(w http.ResponseWriter, r *http.Request) {
	timeline := h.svc.AchievementTimeline(r.Context())
	if timeline == nil {
		timeline = []models.Achievement{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"achievements": timeline, "total": len(timeline)})
}

// AchievementStats handles GET /api/achievements/stats.
//
//	@Summary		Achievement totals and score
//	@Tags			achievements
//	@Produce		json
//	@Success		200	{object}	achievements.Stats
//	@Security		BearerAuth
//	@Router			/achievements/stats [get]
func (h *Handler) AchievementStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.AchievementStats(r.Context()))
}

// AchievementCategories handles GET /api/achievements/categories.
//
//	@Summary		Achievement counts per wish category
//	@Tags			achievements
//	@Produce		json
//	@Success		200	{object}	achievements.CategoryStats
//	@Security		BearerAuth
//	@Router			/achievements/categories [get]
func (h *Handler) AchievementCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.AchievementCategoryStats(r.Context()))
}

// RecentAchievements handles GET /api/achievements/recent.
//
//	@Summary		Most recent achievements
//	@Tags			achievements
//	@Produce		json
//	@Param			limit	query	int	false	"Max entries, default 5"
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/achievements/recent [get]
func (h *Handler) RecentAchievements(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid limit"))
			return
		}
		limit = n
	}
	recent := h.svc.RecentAchievements(r.Context(), limit)
	if recent == nil {
		recent = []models.Achievement{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"achievements": recent, "total": len(recent)})
}

// Dashboard handles GET /api/dashboard.
//
//	@Summary		Dashboard summary
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboard.Summary
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard(r.Context()))
}

// GetSettings handles GET /api/settings.
//
//	@Summary		Current settings
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	models.Settings
//	@Security		BearerAuth
//	@Router			/settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Settings(r.Context()))
}

// SaveSettings handles PUT /api/settings. The body is merged onto the
// defaults before being stored, so partial blobs are fine.
//
//	@Summary		Replace settings
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.Settings	true	"Settings blob"
//	@Success		200		{object}	models.Settings
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings [put]
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var cfg models.Settings
	if !decodeJSON(w, r, &cfg) {
		return
	}
	if err := h.svc.SaveSettings(r.Context(), cfg); err != nil {
		writeError(w, "save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Settings(r.Context()))
}

// AddImportantDate handles POST /api/settings/dates.
//
//	@Summary		Add a milestone date
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ImportantDateRequest	true	"Milestone"
//	@Success		201		{object}	models.ImportantDate
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings/dates [post]
func (h *Handler) AddImportantDate(w http.ResponseWriter, r *http.Request) {
	var req ImportantDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	added, err := h.svc.AddImportantDate(r.Context(), req.Title, req.Date, req.Type)
	if err != nil {
		writeError(w, "add important date", err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// RemoveImportantDate handles DELETE /api/settings/dates/{id}. An unknown
// id is a no-op.
//
//	@Summary		Remove a milestone date
//	@Tags			settings
//	@Param			id	path	int	true	"Milestone id"
//	@Success		204
//	@Security		BearerAuth
//	@Router			/settings/dates/{id} [delete]
func (h *Handler) RemoveImportantDate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveImportantDate(r.Context(), id); err != nil {
		writeError(w, "remove important date", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportSettings handles GET /api/settings/export and returns the blob as
// a downloadable file.
//
//	@Summary		Export settings as JSON
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	models.Settings
//	@Security		BearerAuth
//	@Router			/settings/export [get]
func (h *Handler) ExportSettings(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportSettings(r.Context())
	if err != nil {
		writeError(w, "export settings", err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="wunjo-settings.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ImportSettings handles POST /api/settings/import with a raw JSON body.
// An unparsable file is rejected wholesale; nothing is changed.
//
//	@Summary		Import a settings file
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.Settings
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings/import [post]
func (h *Handler) ImportSettings(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unreadable body"))
		return
	}
	merged, err := h.svc.ImportSettings(r.Context(), data)
	if err != nil {
		writeError(w, "import settings", err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// ClearSettings handles DELETE /api/settings. Only the settings blob is
// reset; the content collections are left alone.
//
//	@Summary		Reset settings to defaults
//	@Tags			settings
//	@Produce		json
//	@Param			confirm	query	string	true	"Must be true"
//	@Success		200	{object}	models.Settings
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings [delete]
func (h *Handler) ClearSettings(w http.ResponseWriter, r *http.Request) {
	if !confirmed(w, r) {
		return
	}
	cleared, err := h.svc.ClearSettings(r.Context())
	if err != nil {
		writeError(w, "clear settings", err)
		return
	}
	writeJSON(w, http.StatusOK, cleared)
}

// DaysTogether handles GET /api/settings/days-together.
//
//	@Summary		Days since the relationship start
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/settings/days-together [get]
func (h *Handler) DaysTogether(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"days": h.svc.DaysTogether(r.Context())})
}
