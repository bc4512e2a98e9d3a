package bookmarks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Delete soft-deletes a bookmark and unlinks its tags in one transaction,
// then reclaims tags left with zero references. Reclamation runs after
// commit and is best effort: its failure leaves garbage tags behind but
// never undoes the deletion.
func (s *Service) Delete(ctx context.Context, bookmarkID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.bookmarks.GetByID(ctx, ownerID, bookmarkID); err != nil {
		return fmt.Errorf("get bookmark: %w", err)
	}

	var unlinked []uuid.UUID
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		unlinked, txErr = s.tags.UnlinkAll(ctx, bookmarkID)
		if txErr != nil {
			return txErr
		}
		return s.bookmarks.SoftDelete(ctx, ownerID, bookmarkID)
	})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	s.reclaimTags(ctx, ownerID, bookmarkID, unlinked)

	s.log.InfoContext(ctx, "bookmark deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("bookmark_id", bookmarkID.String()),
	)

	return nil
}

func (s *Service) reclaimTags(ctx context.Context, ownerID, bookmarkID uuid.UUID, candidates []uuid.UUID) {
	if len(candidates) == 0 {
		return
	}

	deleted, err := s.tags.DeleteOrphans(ctx, candidates)
	if err != nil {
		s.log.WarnContext(ctx, "tag reclamation failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("bookmark_id", bookmarkID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if deleted > 0 {
		s.log.InfoContext(ctx, "orphan tags reclaimed",
			slog.String("owner_id", ownerID.String()),
			slog.Int("count", deleted),
		)
	}
}
