// Package folders lists an owner's folders for the client's folder picker.
// Folder creation and deletion live with the frontend's own sync flow; the
// engine only reads them.
package folders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

type folderRepo interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error)
}

// Service implements folder read operations.
type Service struct {
	folders folderRepo
	log     *slog.Logger
}

// NewService creates a new Folders service.
func NewService(log *slog.Logger, folders folderRepo) *Service {
	return &Service{
		folders: folders,
		log:     log.With("service", "folders"),
	}
}

// List returns the owner's folders ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Folder, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	folders, err := s.folders.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}
