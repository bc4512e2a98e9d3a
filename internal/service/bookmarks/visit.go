package bookmarks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// RecordVisit increments the visit counter and stamps the visit time.
func (s *Service) RecordVisit(ctx context.Context, bookmarkID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.bookmarks.RecordVisit(ctx, ownerID, bookmarkID, time.Now().UTC()); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	return nil
}
