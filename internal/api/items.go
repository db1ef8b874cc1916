package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/siddarthan007/laf/internal/config"
	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/imaging"
	"github.com/siddarthan007/laf/internal/matching"
	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/store"
)

// ItemsHandler handles item report endpoints.
type ItemsHandler struct {
	DB         *sql.DB
	Cfg        config.Config
	Embedder   embedding.Embedder
	Dispatcher *matching.Dispatcher
}

// Create handles POST /api/items: validates the report, generates embeddings
// synchronously, stores the item, and enqueues a background matching run.
// The response does not wait for matching.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.UploadMaxBytes)
	if err := r.ParseMultipartForm(h.Cfg.UploadMaxBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	status := strings.ToUpper(strings.TrimSpace(r.FormValue("status")))
	if status != model.ItemStatusLost && status != model.ItemStatusFound {
		jsonError(w, http.StatusBadRequest, "status must be LOST or FOUND")
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	location := strings.TrimSpace(r.FormValue("location"))
	if description == "" || location == "" {
		jsonError(w, http.StatusBadRequest, "description and location required")
		return
	}

	reporterID := claims.UserID
	isAdminReport := false
	if claims.Role == model.RoleAdmin {
		isAdminReport = r.FormValue("is_admin_report") == "true"

		// Admins may file on behalf of a user, identified by email or roll
		// number. The report stays flagged as an admin report, but contact
		// disclosure will name the user it was filed for.
		if onBehalf := strings.TrimSpace(r.FormValue("on_behalf_of")); onBehalf != "" {
			user, err := store.GetUserByEmail(r.Context(), h.DB, strings.ToLower(onBehalf))
			if err == nil && user == nil {
				user, err = store.GetUserByRollNumber(r.Context(), h.DB, onBehalf)
			}
			if err != nil {
				jsonError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if user == nil {
				jsonError(w, http.StatusNotFound, "on-behalf user not found")
				return
			}
			reporterID = user.ID
			isAdminReport = true
		}
	}

	var imageData []byte
	var imageMime string
	file, _, err := r.FormFile("image")
	switch {
	case err == nil:
		processed, perr := imaging.Process(file)
		file.Close()
		if perr != nil {
			jsonError(w, http.StatusBadRequest, perr.Error())
			return
		}
		imageData = processed.Data
		imageMime = processed.MIME
	case errors.Is(err, http.ErrMissingFile):
		// Optional for LOST reports.
	default:
		jsonError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	// A found item must carry both vectors so every modality comparison
	// against it stays computable.
	if status == model.ItemStatusFound && imageData == nil {
		jsonError(w, http.StatusBadRequest, "found reports require a photo")
		return
	}

	bundle, err := embedding.GenerateBundle(r.Context(), h.Embedder, description, imageData)
	if err != nil {
		if errors.Is(err, embedding.ErrEmptyDescription) {
			jsonError(w, http.StatusBadRequest, "description must not be empty")
			return
		}
		jsonError(w, http.StatusServiceUnavailable, "embedding service unavailable")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, &model.Item{
		ReportedBy:        reporterID,
		Status:            status,
		Description:       description,
		Location:          location,
		ImageMime:         imageMime,
		DescriptionVector: bundle.DescriptionVector,
		ImageVector:       bundle.ImageVector,
		IsAdminReport:     isAdminReport,
	}, imageData)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.Dispatcher.Enqueue(item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	status := strings.ToUpper(r.URL.Query().Get("status"))
	if status != "" && status != model.ItemStatusLost && status != model.ItemStatusFound {
		jsonError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true" && claims.Role == model.RoleAdmin

	items, err := store.ListItems(r.Context(), h.DB, status, includeArchived)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Mine handles GET /api/items/mine.
func (h *ItemsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItemsByReporter(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetItemImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

// Resolve handles POST /api/items/{id}/resolve: the reporter (or an admin)
// closes a report manually. The item is archived and leaves all future
// candidate pools; existing matches are untouched.
func (h *ItemsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if item.ReportedBy != claims.UserID && claims.Role != model.RoleAdmin {
		jsonError(w, http.StatusForbidden, "only the reporter can resolve this item")
		return
	}
	if !item.IsActive {
		jsonError(w, http.StatusConflict, "item already resolved")
		return
	}

	if err := store.ArchiveItem(r.Context(), h.DB, item.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to resolve item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item resolved"})
}
