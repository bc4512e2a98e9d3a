package bookmarks

import (
	"context"
	"fmt"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Find lists the owner's active bookmarks matching the filters, newest
// first, with pagination metadata.
func (s *Service) Find(ctx context.Context, input FindInput) (*ListResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := input.toFilter()

	items, total, err := s.bookmarks.Find(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookmarks: %w", err)
	}

	views, err := s.buildViews(ctx, ownerID, items)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Data: views,
		Meta: domain.NewPageMeta(total, filter.Page, filter.Limit),
	}, nil
}
