// Package folder implements the Folder repository using PostgreSQL.
package folder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markstash/backend/internal/adapter/postgres"
	"github.com/markstash/backend/internal/domain"
)

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const folderColumns = `id, owner_id, name, color, created_at, updated_at`

const getByIDSQL = `SELECT ` + folderColumns + ` FROM folders WHERE id = $1 AND owner_id = $2`

// GetByID returns a folder by primary key with owner filter.
// Returns domain.ErrNotFound if absent or owned by another user.
func (r *Repo) GetByID(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, folderID, ownerID)
	f, err := scanFolder(row)
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}

	return f, nil
}

// Folder names are not unique; the oldest match wins, matching the original
// first-found lookup the categorizer relies on.
const getByNameSQL = `SELECT ` + folderColumns + `
FROM folders
WHERE owner_id = $1 AND name = $2
ORDER BY created_at
LIMIT 1`

// GetByName returns the owner's folder named exactly name (case-sensitive).
// Returns domain.ErrNotFound when no folder matches.
func (r *Repo) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByNameSQL, ownerID, name)
	f, err := scanFolder(row)
	if err != nil {
		return nil, postgres.MapError(err, "folder", name)
	}

	return f, nil
}

const getByIDsSQL = `SELECT ` + folderColumns + `
FROM folders
WHERE owner_id = $1 AND id = ANY($2::uuid[])`

// GetByIDs returns the owner's folders matching ids in one query (batch for
// list projections). Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Folder, error) {
	if len(ids) == 0 {
		return []domain.Folder{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get folders by ids: %w", err)
	}
	defer rows.Close()

	var result []domain.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("get folders by ids: %w", err)
		}
		result = append(result, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get folders by ids: %w", err)
	}

	if result == nil {
		result = []domain.Folder{}
	}

	return result, nil
}

const listSQL = `SELECT ` + folderColumns + ` FROM folders WHERE owner_id = $1 ORDER BY name`

// List returns all folders for an owner ordered by name.
// Returns an empty slice (not nil) when the owner has none.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var result []domain.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("list folders: %w", err)
		}
		result = append(result, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	if result == nil {
		result = []domain.Folder{}
	}

	return result, nil
}

const createSQL = `INSERT INTO folders (id, owner_id, name, color, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + folderColumns

// Create inserts a new folder and returns the persisted domain.Folder.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, f.ID, f.OwnerID, f.Name, f.Color)
	created, err := scanFolder(row)
	if err != nil {
		return nil, postgres.MapError(err, "folder", f.ID)
	}

	return created, nil
}

func scanFolder(row pgx.Row) (*domain.Folder, error) {
	var f domain.Folder
	if err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Color, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
