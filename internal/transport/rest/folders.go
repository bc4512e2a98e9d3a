package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/markstash/backend/internal/domain"
)

// foldersService defines the minimal interface needed by FolderHandler.
type foldersService interface {
	List(ctx context.Context) ([]domain.Folder, error)
}

// FolderHandler serves folder REST endpoints.
type FolderHandler struct {
	svc foldersService
	log *slog.Logger
}

// NewFolderHandler creates a FolderHandler.
func NewFolderHandler(svc foldersService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{svc: svc, log: logger.With("handler", "folders")}
}

type folderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List handles GET /api/folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]folderResponse, len(folders))
	for i, f := range folders {
		resp[i] = folderResponse{
			ID:        f.ID.String(),
			Name:      f.Name,
			Color:     f.Color,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
