package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/markstash/backend/internal/domain"
)

// Update applies a patch on top of the current settings and persists the
// result. Absent fields keep their stored values.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.UserSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if input.AIEnabled != nil {
		existing.AIEnabled = *input.AIEnabled
	}
	if input.Categories != nil {
		existing.Categories = *input.Categories
	}
	if input.BrandColorMap != nil {
		existing.BrandColorMap = *input.BrandColorMap
	}

	updated, err := s.settings.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("owner_id", updated.OwnerID.String()),
		slog.Bool("ai_enabled", updated.AIEnabled),
		slog.Int("categories", len(updated.Categories)),
	)

	return updated, nil
}
