package bookmarks

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// ToggleFavorite flips the favorite flag of an active bookmark.
func (s *Service) ToggleFavorite(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookmarks.ToggleFavorite(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	return s.buildView(ctx, b, nil)
}

// ToggleArchive flips the archived flag of an active bookmark.
func (s *Service) ToggleArchive(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookmarks.ToggleArchive(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("toggle archive: %w", err)
	}

	return s.buildView(ctx, b, nil)
}
