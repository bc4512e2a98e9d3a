package bookmarks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

// buildView assembles the outward projection for a single bookmark. When
// tags is nil they are loaded from storage; create and update already hold
// the resolved tags and pass them in to skip the extra query.
func (s *Service) buildView(ctx context.Context, b *domain.Bookmark, tags []domain.Tag) (*domain.BookmarkView, error) {
	if tags == nil {
		loaded, err := s.tags.GetByBookmarkID(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("load tags: %w", err)
		}
		tags = loaded
	}

	view := &domain.BookmarkView{Bookmark: *b, Tags: tags}

	if b.FolderID != nil {
		folder, err := s.folders.GetByID(ctx, b.OwnerID, *b.FolderID)
		switch {
		case err == nil:
			view.Folder = &domain.FolderRef{ID: folder.ID, Name: folder.Name, Color: folder.Color}
		case errors.Is(err, domain.ErrNotFound):
			// Folder vanished between reads; the bookmark stands on its own.
		default:
			return nil, fmt.Errorf("load folder: %w", err)
		}
	}

	return view, nil
}

// buildViews assembles projections for a page of bookmarks with one batch
// query per relation instead of one per row.
func (s *Service) buildViews(ctx context.Context, ownerID uuid.UUID, items []domain.Bookmark) ([]domain.BookmarkView, error) {
	views := make([]domain.BookmarkView, len(items))
	if len(items) == 0 {
		return views, nil
	}

	bookmarkIDs := make([]uuid.UUID, len(items))
	folderIDSet := make(map[uuid.UUID]struct{})
	for i, b := range items {
		bookmarkIDs[i] = b.ID
		if b.FolderID != nil {
			folderIDSet[*b.FolderID] = struct{}{}
		}
	}

	linked, err := s.tags.GetByBookmarkIDs(ctx, bookmarkIDs)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	tagsByBookmark := make(map[uuid.UUID][]domain.Tag, len(items))
	for _, bt := range linked {
		tagsByBookmark[bt.BookmarkID] = append(tagsByBookmark[bt.BookmarkID], bt.Tag)
	}

	foldersByID := make(map[uuid.UUID]domain.Folder, len(folderIDSet))
	if len(folderIDSet) > 0 {
		folderIDs := make([]uuid.UUID, 0, len(folderIDSet))
		for id := range folderIDSet {
			folderIDs = append(folderIDs, id)
		}
		folders, err := s.folders.GetByIDs(ctx, ownerID, folderIDs)
		if err != nil {
			return nil, fmt.Errorf("load folders: %w", err)
		}
		for _, f := range folders {
			foldersByID[f.ID] = f
		}
	}

	for i, b := range items {
		tags := tagsByBookmark[b.ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		views[i] = domain.BookmarkView{Bookmark: b, Tags: tags}
		if b.FolderID != nil {
			if f, ok := foldersByID[*b.FolderID]; ok {
				views[i].Folder = &domain.FolderRef{ID: f.ID, Name: f.Name, Color: f.Color}
			}
		}
	}

	return views, nil
}
