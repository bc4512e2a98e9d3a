// Package categorize orchestrates AI categorization for bookmark creation:
// it gates the collaborator call on the owner's settings, absorbs
// collaborator failures, and resolves the destination folder or produces a
// folder suggestion.
package categorize

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

type settingsService interface {
	GetOrCreate(ctx context.Context) (*domain.UserSettings, error)
}

type folderRepo interface {
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
}

type categorizer interface {
	Categorize(ctx context.Context, url, title, description string, categories []string) (*domain.AICategorization, error)
}

// Service implements the categorization orchestrator.
type Service struct {
	settings settingsService
	folders  folderRepo
	ai       categorizer
	log      *slog.Logger
}

// NewService creates a new Categorize service. ai may be nil when no API key
// is configured; categorization then degrades to settings-and-folder
// resolution only.
func NewService(
	log *slog.Logger,
	settings settingsService,
	folders folderRepo,
	ai categorizer,
) *Service {
	return &Service{
		settings: settings,
		folders:  folders,
		ai:       ai,
		log:      log.With("service", "categorize"),
	}
}
