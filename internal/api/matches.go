package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/siddarthan007/laf/internal/matching"
	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/store"
)

// MatchesHandler handles match listing and lifecycle endpoints.
type MatchesHandler struct {
	DB        *sql.DB
	Lifecycle *matching.Lifecycle
}

// List handles GET /api/matches: matches where the caller is either party.
func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	status := strings.ToUpper(r.URL.Query().Get("status"))
	switch status {
	case "", model.MatchStatusPending, model.MatchStatusApproved, model.MatchStatusRejected:
	default:
		jsonError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	matches, err := store.ListMatchesForUser(r.Context(), h.DB, claims.UserID, status)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list matches")
		return
	}
	if matches == nil {
		matches = []model.Match{}
	}
	jsonResponse(w, http.StatusOK, matches)
}

// Get handles GET /api/matches/{id}. Only the two parties (and admins) may
// see a match.
func (h *MatchesHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	match, err := store.GetMatch(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get match")
		return
	}
	if match == nil {
		jsonError(w, http.StatusNotFound, "match not found")
		return
	}
	if match.LoserID != claims.UserID && match.FinderID != claims.UserID && claims.Role != model.RoleAdmin {
		jsonError(w, http.StatusForbidden, "not a party to this match")
		return
	}
	jsonResponse(w, http.StatusOK, match)
}

// Approve handles POST /api/matches/{id}/approve.
func (h *MatchesHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	result, err := h.Lifecycle.Approve(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

// Reject handles POST /api/matches/{id}/reject.
func (h *MatchesHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	match, err := h.Lifecycle.Reject(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, match)
}

func writeLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matching.ErrMatchNotFound):
		jsonError(w, http.StatusNotFound, "match not found")
	case errors.Is(err, matching.ErrNotAllowed):
		jsonError(w, http.StatusForbidden, "only the lost item's reporter can act on this match")
	case errors.Is(err, matching.ErrAlreadyResolved):
		jsonError(w, http.StatusConflict, "match already resolved")
	case errors.Is(err, matching.ErrItemArchived):
		jsonError(w, http.StatusConflict, "an item in this match is no longer active")
	default:
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
