package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/categorize"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Create saves a URL for the authenticated owner. Identity is the hash of
// the normalized URL: an active bookmark with the same hash is a conflict,
// a soft-deleted one is revived in place keeping its ID. Tags are the user's
// names followed by the AI's, resolved against the owner's tag set; missing
// tags default to the domain's brand color.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTagsPerRequest); err != nil {
		return nil, err
	}

	rawURL := strings.TrimSpace(input.URL)
	urlHash := domain.HashURL(rawURL)
	urlDomain := domain.ExtractDomain(rawURL)

	existing, err := s.bookmarks.GetByHash(ctx, ownerID, urlHash)
	switch {
	case err == nil && !existing.IsDeleted():
		return nil, fmt.Errorf("bookmark for this URL already exists: %w", domain.ErrConflict)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup bookmark by hash: %w", err)
	case err != nil:
		existing = nil
	}

	if existing == nil && s.cfg.MaxPerOwner > 0 {
		count, err := s.bookmarks.CountByOwner(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("count bookmarks: %w", err)
		}
		if count >= s.cfg.MaxPerOwner {
			return nil, fmt.Errorf("bookmark limit of %d reached: %w", s.cfg.MaxPerOwner, domain.ErrConflict)
		}
	}

	outcome, err := s.cat.Categorize(ctx, categorize.Draft{
		URL:         rawURL,
		Title:       input.Title,
		Description: input.Description,
		Domain:      urlDomain,
		FolderID:    input.FolderID,
	})
	if err != nil {
		return nil, fmt.Errorf("categorize: %w", err)
	}

	tagColor := outcome.Settings.BrandColorFor(urlDomain)
	tagNames := append(append([]string{}, input.Tags...), outcome.AITags...)
	resolved, err := s.resolver.Resolve(ctx, ownerID, tagNames, tagColor)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}

	draft := &domain.Bookmark{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		URL:         rawURL,
		URLHash:     urlHash,
		Domain:      urlDomain,
		Title:       input.Title,
		Description: input.Description,
		Category:    outcome.Category,
		AITags:      outcome.AITags,
		FolderID:    outcome.FolderID,
		CreatedAt:   time.Now().UTC(),
	}

	restored := existing != nil
	if restored {
		draft.ID = existing.ID
	}

	var saved *domain.Bookmark
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		if restored {
			saved, txErr = s.bookmarks.Restore(ctx, draft)
			if errors.Is(txErr, domain.ErrNotFound) {
				// A concurrent create revived the row first; it is active now.
				return fmt.Errorf("bookmark for this URL already exists: %w", domain.ErrConflict)
			}
		} else {
			saved, txErr = s.bookmarks.Create(ctx, draft)
		}
		if txErr != nil {
			if errors.Is(txErr, domain.ErrAlreadyExists) {
				// Lost a concurrent create race on the same hash.
				return fmt.Errorf("bookmark for this URL already exists: %w", domain.ErrConflict)
			}
			return txErr
		}

		return s.tags.ReplaceLinks(ctx, saved.ID, tagIDs(resolved))
	})
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(ctx, saved, resolved)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "bookmark saved",
		slog.String("owner_id", ownerID.String()),
		slog.String("bookmark_id", saved.ID.String()),
		slog.Bool("restored", restored),
	)

	return &CreateResult{Bookmark: *view, Suggestion: outcome.Suggestion}, nil
}

func tagIDs(tags []domain.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}
