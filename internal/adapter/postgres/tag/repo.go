// Package tag implements the Tag repository using PostgreSQL.
// It provides owner-scoped tag lookup/creation, M2M bookmark linking via the
// bookmark_tags join table, and batched reclamation of unreferenced tags.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markstash/backend/internal/adapter/postgres"
	"github.com/markstash/backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByNameSQL = `SELECT id, owner_id, name, color, created_at
FROM tags
WHERE owner_id = $1 AND name = $2`

// GetByName returns a tag by its owner-scoped name (case-sensitive exact
// match). Returns domain.ErrNotFound when the owner has no such tag.
func (r *Repo) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByNameSQL, ownerID, name)
	t, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", name)
	}

	return t, nil
}

const getByBookmarkIDSQL = `SELECT t.id, t.owner_id, t.name, t.color, t.created_at
FROM bookmark_tags bt
JOIN tags t ON t.id = bt.tag_id
WHERE bt.bookmark_id = $1
ORDER BY bt.position`

// GetByBookmarkID returns the tags linked to a bookmark in link order.
// Returns an empty slice (not nil) when none are linked.
func (r *Repo) GetByBookmarkID(ctx context.Context, bookmarkID uuid.UUID) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByBookmarkIDSQL, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("get tags by bookmark_id: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

const getByBookmarkIDsSQL = `SELECT bt.bookmark_id, t.id, t.owner_id, t.name, t.color, t.created_at
FROM bookmark_tags bt
JOIN tags t ON t.id = bt.tag_id
WHERE bt.bookmark_id = ANY($1::uuid[])
ORDER BY bt.bookmark_id, bt.position`

// GetByBookmarkIDs returns tags for multiple bookmarks in one query (batch
// for list projections). Results include BookmarkID for grouping.
func (r *Repo) GetByBookmarkIDs(ctx context.Context, bookmarkIDs []uuid.UUID) ([]domain.BookmarkTag, error) {
	if len(bookmarkIDs) == 0 {
		return []domain.BookmarkTag{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByBookmarkIDsSQL, bookmarkIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by bookmark_ids: %w", err)
	}
	defer rows.Close()

	var result []domain.BookmarkTag
	for rows.Next() {
		var item domain.BookmarkTag
		if err := rows.Scan(&item.BookmarkID, &item.ID, &item.OwnerID, &item.Name, &item.Color, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag with bookmark_id: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tags by bookmark_ids: %w", err)
	}

	if result == nil {
		result = []domain.BookmarkTag{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `INSERT INTO tags (id, owner_id, name, color, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING id, owner_id, name, color, created_at`

// Create inserts a new tag. Returns domain.ErrAlreadyExists when the owner
// already has a tag with this name; callers resolving names concurrently
// treat that as "someone else just created it" and re-read.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, t.ID, t.OwnerID, t.Name, t.Color)
	created, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", t.Name)
	}

	return created, nil
}

const unlinkAllSQL = `DELETE FROM bookmark_tags WHERE bookmark_id = $1 RETURNING tag_id`

// UnlinkAll removes every tag link of a bookmark and returns the tag IDs
// that were linked, for subsequent orphan reclamation.
func (r *Repo) UnlinkAll(ctx context.Context, bookmarkID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, unlinkAllSQL, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("unlink tags: %w", err)
	}
	defer rows.Close()

	var tagIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unlinked tag_id: %w", err)
		}
		tagIDs = append(tagIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unlink tags: %w", err)
	}

	return tagIDs, nil
}

const linkSQL = `INSERT INTO bookmark_tags (bookmark_id, tag_id, position)
SELECT $1, tag_id, ord - 1
FROM unnest($2::uuid[]) WITH ORDINALITY AS ids(tag_id, ord)
ON CONFLICT DO NOTHING`

// ReplaceLinks rewrites a bookmark's tag links to exactly tagIDs, preserving
// the given order in the position column. Intended to run inside the caller's
// transaction together with the bookmark write.
func (r *Repo) ReplaceLinks(ctx context.Context, bookmarkID uuid.UUID, tagIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM bookmark_tags WHERE bookmark_id = $1`, bookmarkID); err != nil {
		return fmt.Errorf("delete tag links: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	if _, err := querier.Exec(ctx, linkSQL, bookmarkID, tagIDs); err != nil {
		return postgres.MapError(err, "bookmark_tag", bookmarkID)
	}

	return nil
}

const deleteOrphansSQL = `DELETE FROM tags
WHERE id = ANY($1::uuid[])
  AND NOT EXISTS (SELECT 1 FROM bookmark_tags bt WHERE bt.tag_id = tags.id)`

// DeleteOrphans removes every tag in tagIDs that no bookmark references
// anymore, in one batched statement. Returns the number of tags reclaimed.
// Callers must invoke it only after the unlink that orphaned them committed.
func (r *Repo) DeleteOrphans(ctx context.Context, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteOrphansSQL, tagIDs)
	if err != nil {
		return 0, fmt.Errorf("delete orphan tags: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	var result []domain.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Tag{}
	}

	return result, nil
}
