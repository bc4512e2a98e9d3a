// Package bookmarks implements the bookmark lifecycle: deduplicated create
// with restore-in-place, listing, updates, soft deletion with tag
// reclamation, flag toggles, and visit tracking.
package bookmarks

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/config"
	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/categorize"
)

type bookmarkRepo interface {
	GetByID(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	GetByHash(ctx context.Context, ownerID uuid.UUID, urlHash string) (*domain.Bookmark, error)
	ActiveHashExists(ctx context.Context, ownerID uuid.UUID, urlHash string, excludeID uuid.UUID) (bool, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Find(ctx context.Context, ownerID uuid.UUID, filter domain.BookmarkFilter) ([]domain.Bookmark, int, error)
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	Restore(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	Update(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	SoftDelete(ctx context.Context, ownerID, bookmarkID uuid.UUID) error
	ToggleFavorite(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	ToggleArchive(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	RecordVisit(ctx context.Context, ownerID, bookmarkID uuid.UUID, visitedAt time.Time) error
}

type tagRepo interface {
	GetByBookmarkID(ctx context.Context, bookmarkID uuid.UUID) ([]domain.Tag, error)
	GetByBookmarkIDs(ctx context.Context, bookmarkIDs []uuid.UUID) ([]domain.BookmarkTag, error)
	ReplaceLinks(ctx context.Context, bookmarkID uuid.UUID, tagIDs []uuid.UUID) error
	UnlinkAll(ctx context.Context, bookmarkID uuid.UUID) ([]uuid.UUID, error)
	DeleteOrphans(ctx context.Context, tagIDs []uuid.UUID) (int, error)
}

type folderRepo interface {
	GetByID(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error)
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Folder, error)
}

type tagResolver interface {
	Resolve(ctx context.Context, ownerID uuid.UUID, names []string, defaultColor *string) ([]domain.Tag, error)
}

type categorizeService interface {
	Categorize(ctx context.Context, draft categorize.Draft) (*domain.CategorizationOutcome, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements bookmark operations.
type Service struct {
	bookmarks bookmarkRepo
	tags      tagRepo
	folders   folderRepo
	resolver  tagResolver
	cat       categorizeService
	txManager txManager
	cfg       config.BookmarksConfig
	log       *slog.Logger
}

// NewService creates a new Bookmarks service.
func NewService(
	log *slog.Logger,
	cfg config.BookmarksConfig,
	bookmarks bookmarkRepo,
	tags tagRepo,
	folders folderRepo,
	resolver tagResolver,
	cat categorizeService,
	txManager txManager,
) *Service {
	return &Service{
		bookmarks: bookmarks,
		tags:      tags,
		folders:   folders,
		resolver:  resolver,
		cat:       cat,
		txManager: txManager,
		cfg:       cfg,
		log:       log.With("service", "bookmarks"),
	}
}
