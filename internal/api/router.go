package api

import (
	"database/sql"
	"net/http"

	"github.com/siddarthan007/laf/internal/config"
	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/matching"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, cfg config.Config, embedder embedding.Embedder, dispatcher *matching.Dispatcher, lifecycle *matching.Lifecycle) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db, Cfg: cfg, Embedder: embedder, Dispatcher: dispatcher}
	matchesHandler := &MatchesHandler{DB: db, Lifecycle: lifecycle}
	searchHandler := &SearchHandler{DB: db, Embedder: embedder}
	adminHandler := &AdminHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireAdmin()

	// Public: registration and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated auth routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Item reports.
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("GET /api/items/mine", authMW(http.HandlerFunc(itemsHandler.Mine)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))
	mux.Handle("POST /api/items/{id}/resolve", authMW(http.HandlerFunc(itemsHandler.Resolve)))

	// Matches.
	mux.Handle("GET /api/matches", authMW(http.HandlerFunc(matchesHandler.List)))
	mux.Handle("GET /api/matches/{id}", authMW(http.HandlerFunc(matchesHandler.Get)))
	mux.Handle("POST /api/matches/{id}/approve", authMW(http.HandlerFunc(matchesHandler.Approve)))
	mux.Handle("POST /api/matches/{id}/reject", authMW(http.HandlerFunc(matchesHandler.Reject)))

	// Search.
	mux.Handle("GET /api/search", authMW(http.HandlerFunc(searchHandler.Search)))

	// Admin.
	mux.Handle("GET /api/admin/stats", authMW(requireAdmin(http.HandlerFunc(adminHandler.Stats))))
	mux.Handle("GET /api/admin/users/{id}/items", authMW(requireAdmin(http.HandlerFunc(adminHandler.UserItems))))

	return LoggingMiddleware(mux)
}
