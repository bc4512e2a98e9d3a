package testhelper

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markstash/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedFolder inserts a folder for the given owner and returns it.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string) domain.Folder {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	folder := domain.Folder{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     "#6B7280",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO folders (id, owner_id, name, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		folder.ID, folder.OwnerID, folder.Name, folder.Color, folder.CreatedAt, folder.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder insert: %v", err)
	}

	return folder
}

// SeedTag inserts a tag for the given owner and returns it.
func SeedTag(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	tag := domain.Tag{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, owner_id, name, color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tag.ID, tag.OwnerID, tag.Name, tag.Color, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedBookmark inserts an active bookmark with a unique URL for the given owner.
func SeedBookmark(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Bookmark {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	url := "https://example.com/articles/" + suffix
	sum := md5.Sum([]byte("example.com/articles/" + suffix))

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Bookmark{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		URL:       url,
		URLHash:   hex.EncodeToString(sum[:]),
		Domain:    "example.com",
		Title:     "Article " + suffix,
		AITags:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bookmarks (id, owner_id, url, url_hash, domain, title, description,
		                        category, ai_tags, folder_id, is_favorite, is_archived,
		                        visit_count, last_visited_at, created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		b.ID, b.OwnerID, b.URL, b.URLHash, b.Domain, b.Title, b.Description,
		b.Category, b.AITags, b.FolderID, b.IsFavorite, b.IsArchived,
		b.VisitCount, b.LastVisited, b.CreatedAt, b.UpdatedAt, b.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBookmark insert: %v", err)
	}

	return b
}

// LinkTags attaches tags to a bookmark in the given order.
func LinkTags(t *testing.T, pool *pgxpool.Pool, bookmarkID uuid.UUID, tagIDs ...uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	for i, tagID := range tagIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO bookmark_tags (bookmark_id, tag_id, position) VALUES ($1, $2, $3)`,
			bookmarkID, tagID, i,
		)
		if err != nil {
			t.Fatalf("testhelper: LinkTags insert: %v", err)
		}
	}
}
