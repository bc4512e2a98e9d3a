package domain

import "github.com/google/uuid"

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// BookmarkFilter defines parameters for listing bookmarks. All set filters
// AND together; the Search clauses OR over title, description, and URL.
type BookmarkFilter struct {
	// FolderID restricts results to a single folder.
	FolderID *uuid.UUID

	// IsFavorite / IsArchived filter on the respective flag when set.
	IsFavorite *bool
	IsArchived *bool

	// Search performs a case-insensitive substring match over title,
	// description, and url.
	Search *string

	// TagNames keeps bookmarks linked to at least one tag with one of the
	// given names (exact match).
	TagNames []string

	// Page is the 1-indexed page number. Values below 1 are clamped to 1.
	Page int

	// Limit is the page size. Defaults to 50, capped at 200.
	Limit int
}

// Normalize applies defaults and clamps pagination values.
func (f *BookmarkFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
}

// Offset returns the row offset for the current page.
func (f *BookmarkFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// PageMeta describes a page of results. TotalPages is ceil(Total/Limit).
type PageMeta struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPageMeta derives pagination metadata from a total row count.
func NewPageMeta(total, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
