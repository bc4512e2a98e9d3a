package bookmarks

import "github.com/markstash/backend/internal/domain"

// CreateResult is the outcome of saving a URL: the stored (or revived)
// bookmark and, when AI produced a category without a matching folder, a
// folder suggestion for the caller to act on.
type CreateResult struct {
	Bookmark   domain.BookmarkView
	Suggestion *domain.FolderSuggestion
}

// ListResult is one page of bookmarks with pagination metadata.
type ListResult struct {
	Data []domain.BookmarkView
	Meta domain.PageMeta
}
