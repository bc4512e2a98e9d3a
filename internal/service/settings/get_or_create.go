package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// GetOrCreate returns the owner's settings, creating the row with defaults on
// first access. A concurrent first access losing the insert race falls back
// to reading the winner's row.
func (s *Service) GetOrCreate(ctx context.Context) (*domain.UserSettings, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.settings.Get(ctx, ownerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	defaults := domain.DefaultSettings(ownerID)
	created, err := s.settings.Insert(ctx, &defaults)
	if err == nil {
		s.log.InfoContext(ctx, "settings created with defaults",
			slog.String("owner_id", ownerID.String()),
		)
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	// Lost the race to a concurrent first access.
	existing, err = s.settings.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("re-read settings: %w", err)
	}

	return existing, nil
}
