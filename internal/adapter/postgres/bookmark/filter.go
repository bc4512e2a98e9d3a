package bookmark

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/markstash/backend/internal/adapter/postgres"
	"github.com/markstash/backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Find returns one page of active bookmarks matching the filter, newest
// first, plus the total match count. All set filters AND together; the
// search term ORs over title, description, and url.
func (r *Repo) Find(ctx context.Context, ownerID uuid.UUID, filter domain.BookmarkFilter) ([]domain.Bookmark, int, error) {
	filter.Normalize()
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := buildWhere(ownerID, filter)

	countSQL, countArgs, err := psql.Select("count(*)").From("bookmarks b").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}

	pageSQL, pageArgs, err := psql.
		Select(
			"b.id", "b.owner_id", "b.url", "b.url_hash", "b.domain", "b.title",
			"b.description", "b.category", "b.ai_tags", "b.folder_id",
			"b.is_favorite", "b.is_archived", "b.visit_count",
			"b.last_visited_at", "b.created_at", "b.updated_at", "b.deleted_at",
		).
		From("bookmarks b").
		Where(where).
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	rows, err := querier.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("find bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks, err := scanBookmarks(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("find bookmarks: %w", err)
	}

	return bookmarks, total, nil
}

// buildWhere composes the WHERE clause shared by the count and page queries.
func buildWhere(ownerID uuid.UUID, filter domain.BookmarkFilter) sq.And {
	where := sq.And{
		sq.Eq{"b.owner_id": ownerID},
		sq.Expr("b.deleted_at IS NULL"),
	}

	if filter.FolderID != nil {
		where = append(where, sq.Eq{"b.folder_id": *filter.FolderID})
	}
	if filter.IsFavorite != nil {
		where = append(where, sq.Eq{"b.is_favorite": *filter.IsFavorite})
	}
	if filter.IsArchived != nil {
		where = append(where, sq.Eq{"b.is_archived": *filter.IsArchived})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.description": pattern},
			sq.ILike{"b.url": pattern},
		})
	}

	if len(filter.TagNames) > 0 {
		where = append(where, sq.Expr(
			`EXISTS (
                SELECT 1 FROM bookmark_tags bt
                JOIN tags t ON t.id = bt.tag_id
                WHERE bt.bookmark_id = b.id AND t.name = ANY(?)
            )`, filter.TagNames))
	}

	return where
}

func scanBookmarks(rows pgx.Rows) ([]domain.Bookmark, error) {
	var result []domain.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Bookmark{}
	}

	return result, nil
}
