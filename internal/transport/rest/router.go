package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/config"
	"github.com/markstash/backend/internal/transport/middleware"
)

// tokenValidator matches the auth middleware's requirement.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Bookmarks *BookmarkHandler
	Settings  *SettingsHandler
	Folders   *FolderHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP routing table. Probe endpoints are mounted
// outside the API middleware chain so a broken token validator never takes
// down readiness checks.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	validator tokenValidator,
	h Handlers,
) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/bookmarks", h.Bookmarks.Create)
	api.HandleFunc("GET /api/bookmarks", h.Bookmarks.List)
	api.HandleFunc("GET /api/bookmarks/{id}", h.Bookmarks.Get)
	api.HandleFunc("PATCH /api/bookmarks/{id}", h.Bookmarks.Update)
	api.HandleFunc("DELETE /api/bookmarks/{id}", h.Bookmarks.Delete)
	api.HandleFunc("POST /api/bookmarks/{id}/favorite", h.Bookmarks.ToggleFavorite)
	api.HandleFunc("POST /api/bookmarks/{id}/archive", h.Bookmarks.ToggleArchive)
	api.HandleFunc("POST /api/bookmarks/{id}/visit", h.Bookmarks.RecordVisit)

	api.HandleFunc("GET /api/settings", h.Settings.Get)
	api.HandleFunc("PATCH /api/settings", h.Settings.Update)

	api.HandleFunc("GET /api/folders", h.Folders.List)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		middleware.Auth(validator),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", h.Health.Health)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /live", h.Health.Live)
	root.Handle("/api/", chain(api))

	return root
}
