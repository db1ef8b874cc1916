package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/search"
)

// SearchHandler handles semantic item search.
type SearchHandler struct {
	DB       *sql.DB
	Embedder embedding.Embedder
}

// Search handles GET /api/search?q=...&status=...&limit=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		jsonError(w, http.StatusBadRequest, "query must be at least 2 characters")
		return
	}

	status := strings.ToUpper(r.URL.Query().Get("status"))
	if status != "" && status != model.ItemStatusLost && status != model.ItemStatusFound {
		jsonError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			jsonError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	results, err := search.Search(r.Context(), h.DB, h.Embedder, query, status, limit)
	if err != nil {
		jsonError(w, http.StatusServiceUnavailable, "search unavailable")
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	jsonResponse(w, http.StatusOK, results)
}
