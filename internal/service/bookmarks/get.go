package bookmarks

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Get returns a single active bookmark with its folder and tags.
func (s *Service) Get(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookmarks.GetByID(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("get bookmark: %w", err)
	}

	return s.buildView(ctx, b, nil)
}
