// Package bookmark implements the Bookmark repository using PostgreSQL.
// It owns the dedup lookup by (owner_id, url_hash), the soft-delete and
// restore writes, the atomic flag/counter mutations, and the filtered
// paginated listing.
package bookmark

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markstash/backend/internal/adapter/postgres"
	"github.com/markstash/backend/internal/domain"
)

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const bookmarkColumns = `id, owner_id, url, url_hash, domain, title, description,
	category, ai_tags, folder_id, is_favorite, is_archived, visit_count,
	last_visited_at, created_at, updated_at, deleted_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + bookmarkColumns + `
FROM bookmarks
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

// GetByID returns an active bookmark by primary key with owner filter.
// Returns domain.ErrNotFound if the bookmark is absent, deleted, or belongs
// to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, bookmarkID, ownerID)
	b, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", bookmarkID)
	}

	return b, nil
}

// Active rows sort before deleted ones; among deleted rows the most recently
// deleted wins. Restore always targets the row this query returns.
const getByHashSQL = `SELECT ` + bookmarkColumns + `
FROM bookmarks
WHERE owner_id = $1 AND url_hash = $2
ORDER BY (deleted_at IS NULL) DESC, deleted_at DESC NULLS LAST
LIMIT 1`

// GetByHash returns the bookmark holding the given fingerprint for an owner,
// regardless of deletion state. Returns domain.ErrNotFound when no row holds
// the hash at all.
func (r *Repo) GetByHash(ctx context.Context, ownerID uuid.UUID, urlHash string) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByHashSQL, ownerID, urlHash)
	b, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", urlHash)
	}

	return b, nil
}

const activeHashExistsSQL = `SELECT EXISTS (
    SELECT 1 FROM bookmarks
    WHERE owner_id = $1 AND url_hash = $2 AND id <> $3 AND deleted_at IS NULL
)`

// ActiveHashExists reports whether an active bookmark other than excludeID
// already holds the fingerprint for this owner. Used by the update path's
// duplicate check.
func (r *Repo) ActiveHashExists(ctx context.Context, ownerID uuid.UUID, urlHash string, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, activeHashExistsSQL, ownerID, urlHash, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("active hash exists: %w", err)
	}

	return exists, nil
}

const countByOwnerSQL = `SELECT count(*) FROM bookmarks WHERE owner_id = $1 AND deleted_at IS NULL`

// CountByOwner returns the number of active bookmarks for an owner.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `INSERT INTO bookmarks (
    id, owner_id, url, url_hash, domain, title, description, category,
    ai_tags, folder_id, is_favorite, is_archived, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING ` + bookmarkColumns

// Create inserts a new bookmark row. Returns domain.ErrAlreadyExists when
// another active bookmark holds the same (owner_id, url_hash); the partial
// unique index backs the dedup invariant even under concurrent creates.
func (r *Repo) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		b.ID, b.OwnerID, b.URL, b.URLHash, b.Domain, b.Title, b.Description,
		b.Category, b.AITags, b.FolderID, b.IsFavorite, b.IsArchived, b.CreatedAt,
	)
	created, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", b.ID)
	}

	return created, nil
}

const restoreSQL = `UPDATE bookmarks SET
    url = $3, url_hash = $4, domain = $5, title = $6, description = $7,
    category = $8, ai_tags = $9, folder_id = $10, is_favorite = false,
    is_archived = false, deleted_at = NULL, updated_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NOT NULL
RETURNING ` + bookmarkColumns

// Restore revives a soft-deleted bookmark in place: every draft field
// overwrites the stored one, deleted_at clears, the ID survives. This is the
// only write that mutates a deleted row. Returns domain.ErrNotFound when the
// row is already active, so a lost restore race cannot overwrite a live
// bookmark.
func (r *Repo) Restore(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, restoreSQL,
		b.ID, b.OwnerID, b.URL, b.URLHash, b.Domain, b.Title, b.Description,
		b.Category, b.AITags, b.FolderID,
	)
	restored, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", b.ID)
	}

	return restored, nil
}

const updateSQL = `UPDATE bookmarks SET
    url = $3, url_hash = $4, domain = $5, title = $6, description = $7,
    category = $8, folder_id = $9, updated_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
RETURNING ` + bookmarkColumns

// Update persists the mutable fields of an active bookmark.
// Returns domain.ErrNotFound if the bookmark is absent or deleted.
func (r *Repo) Update(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		b.ID, b.OwnerID, b.URL, b.URLHash, b.Domain, b.Title, b.Description,
		b.Category, b.FolderID,
	)
	updated, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", b.ID)
	}

	return updated, nil
}

const softDeleteSQL = `UPDATE bookmarks
SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

// SoftDelete marks an active bookmark deleted.
// Returns domain.ErrNotFound if the bookmark is absent or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, ownerID, bookmarkID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, bookmarkID, ownerID)
	if err != nil {
		return postgres.MapError(err, "bookmark", bookmarkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bookmark %s: %w", bookmarkID, domain.ErrNotFound)
	}

	return nil
}

const toggleFavoriteSQL = `UPDATE bookmarks
SET is_favorite = NOT is_favorite, updated_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
RETURNING ` + bookmarkColumns

const toggleArchiveSQL = `UPDATE bookmarks
SET is_archived = NOT is_archived, updated_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
RETURNING ` + bookmarkColumns

// ToggleFavorite flips is_favorite in a single statement, so concurrent
// toggles never operate on a stale snapshot.
func (r *Repo) ToggleFavorite(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	return r.toggle(ctx, toggleFavoriteSQL, ownerID, bookmarkID)
}

// ToggleArchive flips is_archived, same semantics as ToggleFavorite.
func (r *Repo) ToggleArchive(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	return r.toggle(ctx, toggleArchiveSQL, ownerID, bookmarkID)
}

func (r *Repo) toggle(ctx context.Context, sql string, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, bookmarkID, ownerID)
	b, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", bookmarkID)
	}

	return b, nil
}

const recordVisitSQL = `UPDATE bookmarks
SET visit_count = visit_count + 1, last_visited_at = $3
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

// RecordVisit increments visit_count in place (no read-modify-write, so
// concurrent visits all count) and stamps last_visited_at.
// Returns domain.ErrNotFound if the bookmark is absent or deleted.
func (r *Repo) RecordVisit(ctx context.Context, ownerID, bookmarkID uuid.UUID, visitedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, recordVisitSQL, bookmarkID, ownerID, visitedAt)
	if err != nil {
		return postgres.MapError(err, "bookmark", bookmarkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bookmark %s: %w", bookmarkID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanBookmark(row pgx.Row) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.URL, &b.URLHash, &b.Domain, &b.Title,
		&b.Description, &b.Category, &b.AITags, &b.FolderID, &b.IsFavorite,
		&b.IsArchived, &b.VisitCount, &b.LastVisited, &b.CreatedAt,
		&b.UpdatedAt, &b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	// char(32) is space-padded for values shorter than 32 chars.
	b.URLHash = strings.TrimRight(b.URLHash, " ")

	return &b, nil
}
