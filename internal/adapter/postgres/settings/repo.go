// Package settings implements the UserSettings repository using PostgreSQL.
// The brand color map is stored as jsonb, the category vocabulary as text[].
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markstash/backend/internal/adapter/postgres"
	"github.com/markstash/backend/internal/domain"
)

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const settingsColumns = `owner_id, ai_enabled, categories, brand_color_map, created_at, updated_at`

const getSQL = `SELECT ` + settingsColumns + ` FROM user_settings WHERE owner_id = $1`

// Get returns the settings row for an owner.
// Returns domain.ErrNotFound when the owner has no row yet.
func (r *Repo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, ownerID)
	s, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", ownerID)
	}

	return s, nil
}

const insertSQL = `INSERT INTO user_settings (owner_id, ai_enabled, categories, brand_color_map, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + settingsColumns

// Insert creates the settings row. Returns domain.ErrAlreadyExists when a
// concurrent first access already created it; callers re-read in that case.
func (r *Repo) Insert(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	colorJSON, err := json.Marshal(s.BrandColorMap)
	if err != nil {
		return nil, fmt.Errorf("marshal brand_color_map: %w", err)
	}

	row := querier.QueryRow(ctx, insertSQL, s.OwnerID, s.AIEnabled, s.Categories, colorJSON)
	created, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.OwnerID)
	}

	return created, nil
}

const updateSQL = `UPDATE user_settings
SET ai_enabled = $2, categories = $3, brand_color_map = $4, updated_at = now()
WHERE owner_id = $1
RETURNING ` + settingsColumns

// Update overwrites the settings row with the given values.
// Returns domain.ErrNotFound when no row exists for the owner.
func (r *Repo) Update(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	colorJSON, err := json.Marshal(s.BrandColorMap)
	if err != nil {
		return nil, fmt.Errorf("marshal brand_color_map: %w", err)
	}

	row := querier.QueryRow(ctx, updateSQL, s.OwnerID, s.AIEnabled, s.Categories, colorJSON)
	updated, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.OwnerID)
	}

	return updated, nil
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var (
		s         domain.UserSettings
		colorJSON []byte
	)
	if err := row.Scan(&s.OwnerID, &s.AIEnabled, &s.Categories, &colorJSON, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(colorJSON, &s.BrandColorMap); err != nil {
		return nil, fmt.Errorf("unmarshal brand_color_map: %w", err)
	}

	return &s, nil
}
