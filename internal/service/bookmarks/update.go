package bookmarks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Update patches an active bookmark. A changed URL re-derives the hash and
// domain and must not collide with another active bookmark. A present Tags
// slice replaces the tag links; tags created here carry no default color.
// Tags unlinked by the replacement are not reclaimed, only deletion reclaims.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.BookmarkView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTagsPerRequest); err != nil {
		return nil, err
	}

	b, err := s.bookmarks.GetByID(ctx, ownerID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get bookmark: %w", err)
	}

	if input.URL != nil {
		rawURL := strings.TrimSpace(*input.URL)
		newHash := domain.HashURL(rawURL)
		if newHash != b.URLHash {
			taken, err := s.bookmarks.ActiveHashExists(ctx, ownerID, newHash, b.ID)
			if err != nil {
				return nil, fmt.Errorf("check hash: %w", err)
			}
			if taken {
				return nil, fmt.Errorf("another bookmark holds this URL: %w", domain.ErrConflict)
			}
		}
		b.URL = rawURL
		b.URLHash = newHash
		b.Domain = domain.ExtractDomain(rawURL)
	}
	if input.Title != nil {
		b.Title = *input.Title
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	switch {
	case input.ClearFolder:
		b.FolderID = nil
	case input.FolderID != nil:
		b.FolderID = input.FolderID
	}

	var (
		updated *domain.Bookmark
		tags    []domain.Tag
	)
	if input.Tags != nil {
		tags, err = s.resolver.Resolve(ctx, ownerID, *input.Tags, nil)
		if err != nil {
			return nil, fmt.Errorf("resolve tags: %w", err)
		}

		err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
			var txErr error
			updated, txErr = s.bookmarks.Update(ctx, b)
			if txErr != nil {
				return txErr
			}
			return s.tags.ReplaceLinks(ctx, updated.ID, tagIDs(tags))
		})
	} else {
		updated, err = s.bookmarks.Update(ctx, b)
	}
	if err != nil {
		return nil, fmt.Errorf("update bookmark: %w", err)
	}

	s.log.InfoContext(ctx, "bookmark updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("bookmark_id", updated.ID.String()),
	)

	return s.buildView(ctx, updated, tags)
}
