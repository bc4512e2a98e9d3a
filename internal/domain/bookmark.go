package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved URL owned by a single user. Identity for deduplication
// is (OwnerID, URLHash); at most one non-deleted bookmark per owner may hold
// a given hash. A soft-deleted bookmark with the same hash is revived in
// place by the next create, keeping its ID.
type Bookmark struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	URL         string
	URLHash     string
	Domain      string
	Title       string
	Description string
	Category    *string
	AITags      []string
	FolderID    *uuid.UUID
	IsFavorite  bool
	IsArchived  bool
	VisitCount  int
	LastVisited *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted returns true if the bookmark has been soft-deleted.
func (b *Bookmark) IsDeleted() bool {
	return b.DeletedAt != nil
}

// Tag is a user-scoped label. (OwnerID, Name) is unique, names are matched
// case-sensitively on the trimmed form. A tag with zero referencing
// bookmarks is garbage and is reclaimed on bookmark deletion.
type Tag struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Color     *string
	CreatedAt time.Time
}

// BookmarkTag is a tag together with the bookmark it is linked to, used by
// batch lookups that load tags for many bookmarks at once.
type BookmarkTag struct {
	BookmarkID uuid.UUID
	Tag
}

// Folder groups bookmarks. Bookmarks reference folders weakly: deleting a
// folder nulls the reference, it never cascades into bookmarks.
type Folder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderRef is the folder projection embedded in bookmark responses.
type FolderRef struct {
	ID    uuid.UUID
	Name  string
	Color string
}

// BookmarkView is the outward projection of a bookmark: the record plus its
// folder reference and its tags in link order. The join rows themselves are
// never exposed.
type BookmarkView struct {
	Bookmark
	Folder *FolderRef
	Tags   []Tag
}

// AICategorization is the result of the AI collaborator: at most one
// category from the offered vocabulary (empty when the model answered
// outside it) and a small set of descriptive tags.
type AICategorization struct {
	Category string
	Tags     []string
}

// FolderSuggestion is returned by create when AI produced a category but no
// matching folder exists. The caller decides whether to act on it; the core
// never creates folders on its own.
type FolderSuggestion struct {
	Name  string
	Color *string
}

// CategorizationOutcome is what the categorization orchestrator hands to the
// bookmark create path: the AI-assigned category and tags (both empty when AI
// was skipped or failed), the resolved destination folder, at most one folder
// suggestion, and the settings that were consulted so downstream defaulting
// (tag colors) does not re-fetch them.
type CategorizationOutcome struct {
	Category   *string
	AITags     []string
	FolderID   *uuid.UUID
	Suggestion *FolderSuggestion
	Settings   *UserSettings
}
