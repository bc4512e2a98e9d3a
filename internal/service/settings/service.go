// Package settings provides per-owner categorization preferences with lazy
// creation: the first read materializes a row with the default vocabulary
// and brand-color map.
package settings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.UserSettings, error)
	Insert(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error)
	Update(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error)
}

// Service provides settings operations.
type Service struct {
	settings settingsRepo
	log      *slog.Logger
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, settings settingsRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "settings"),
	}
}
