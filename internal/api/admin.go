package api

import (
	"database/sql"
	"net/http"

	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/store"
)

// AdminHandler handles admin-only endpoints.
type AdminHandler struct {
	DB *sql.DB
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.GetStats(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// UserItems handles GET /api/admin/users/{id}/items: every report filed by
// (or on behalf of) a given user, archived included.
func (h *AdminHandler) UserItems(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	user, err := store.GetUser(r.Context(), h.DB, userID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	items, err := store.ListItemsByReporter(r.Context(), h.DB, userID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}
