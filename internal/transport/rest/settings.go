package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/settings"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	GetOrCreate(ctx context.Context) (*domain.UserSettings, error)
	Update(ctx context.Context, input settings.UpdateInput) (*domain.UserSettings, error)
}

// SettingsHandler serves user settings REST endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	AIEnabled     *bool              `json:"aiEnabled"`
	Categories    *[]string          `json:"categories"`
	BrandColorMap *map[string]string `json:"brandColorMap"`
}

type settingsResponse struct {
	AIEnabled     bool              `json:"aiEnabled"`
	Categories    []string          `json:"categories"`
	BrandColorMap map[string]string `json:"brandColorMap"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Get handles GET /api/settings. First access materializes the defaults.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetOrCreate(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update handles PATCH /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.Update(r.Context(), settings.UpdateInput{
		AIEnabled:     req.AIEnabled,
		Categories:    req.Categories,
		BrandColorMap: req.BrandColorMap,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	resp := settingsResponse{
		AIEnabled:     s.AIEnabled,
		Categories:    s.Categories,
		BrandColorMap: s.BrandColorMap,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.BrandColorMap == nil {
		resp.BrandColorMap = map[string]string{}
	}
	return resp
}
