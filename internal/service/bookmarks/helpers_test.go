package bookmarks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/config"
	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/categorize"
	"github.com/markstash/backend/pkg/ctxutil"
)

type testMocks struct {
	bookmarks *bookmarkRepoMock
	tags      *tagRepoMock
	folders   *folderRepoMock
	resolver  *tagResolverMock
	cat       *categorizeServiceMock
	tx        *txManagerMock
}

func newTestService(t *testing.T, cfg config.BookmarksConfig) (*Service, *testMocks) {
	t.Helper()

	m := &testMocks{
		bookmarks: &bookmarkRepoMock{},
		tags:      &tagRepoMock{},
		folders:   &folderRepoMock{},
		resolver:  &tagResolverMock{},
		cat:       &categorizeServiceMock{},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(log, cfg, m.bookmarks, m.tags, m.folders, m.resolver, m.cat, m.tx)

	return svc, m
}

func testConfig() config.BookmarksConfig {
	return config.BookmarksConfig{MaxPerOwner: 100, MaxTagsPerRequest: 20}
}

func ctxWithOwner(ownerID uuid.UUID) context.Context {
	return ctxutil.WithOwnerID(context.Background(), ownerID)
}

// passthroughOutcome makes the categorize mock behave as if AI were
// disabled: default settings, no category, the draft folder unchanged.
func passthroughOutcome(ownerID uuid.UUID) func(ctx context.Context, draft categorize.Draft) (*domain.CategorizationOutcome, error) {
	return func(_ context.Context, draft categorize.Draft) (*domain.CategorizationOutcome, error) {
		settings := domain.DefaultSettings(ownerID)
		return &domain.CategorizationOutcome{
			AITags:   []string{},
			FolderID: draft.FolderID,
			Settings: &settings,
		}, nil
	}
}

// echoResolve materializes every requested name into a fresh tag carrying
// the given default color.
func echoResolve(ownerID uuid.UUID) func(ctx context.Context, owner uuid.UUID, names []string, defaultColor *string) ([]domain.Tag, error) {
	return func(_ context.Context, _ uuid.UUID, names []string, defaultColor *string) ([]domain.Tag, error) {
		tags := make([]domain.Tag, 0, len(names))
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			tags = append(tags, domain.Tag{ID: uuid.New(), OwnerID: ownerID, Name: name, Color: defaultColor})
		}
		return tags, nil
	}
}

func activeBookmark(ownerID uuid.UUID, rawURL string) *domain.Bookmark {
	now := time.Now().UTC().Add(-time.Hour)
	return &domain.Bookmark{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		URL:       rawURL,
		URLHash:   domain.HashURL(rawURL),
		Domain:    domain.ExtractDomain(rawURL),
		Title:     "Saved earlier",
		AITags:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func deletedBookmark(ownerID uuid.UUID, rawURL string) *domain.Bookmark {
	b := activeBookmark(ownerID, rawURL)
	deletedAt := time.Now().UTC().Add(-time.Minute)
	b.DeletedAt = &deletedAt
	return b
}

func echoCreate(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	out := *b
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func requireErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
