package bookmarks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	GetByIDFunc          func(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	GetByHashFunc        func(ctx context.Context, ownerID uuid.UUID, urlHash string) (*domain.Bookmark, error)
	ActiveHashExistsFunc func(ctx context.Context, ownerID uuid.UUID, urlHash string, excludeID uuid.UUID) (bool, error)
	CountByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) (int, error)
	FindFunc             func(ctx context.Context, ownerID uuid.UUID, filter domain.BookmarkFilter) ([]domain.Bookmark, int, error)
	CreateFunc           func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	RestoreFunc          func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	UpdateFunc           func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	SoftDeleteFunc       func(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) error
	ToggleFavoriteFunc   func(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	ToggleArchiveFunc    func(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error)
	RecordVisitFunc      func(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID, visitedAt time.Time) error

	calls struct {
		GetByID []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			BookmarkID uuid.UUID
		}
		GetByHash []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			URLHash string
		}
		ActiveHashExists []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			URLHash   string
			ExcludeID uuid.UUID
		}
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Find []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.BookmarkFilter
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Bookmark
		}
		Restore []struct {
			Ctx context.Context
			B   *domain.Bookmark
		}
		Update []struct {
			Ctx context.Context
			B   *domain.Bookmark
		}
		SoftDelete []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			BookmarkID uuid.UUID
		}
		ToggleFavorite []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			BookmarkID uuid.UUID
		}
		ToggleArchive []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			BookmarkID uuid.UUID
		}
		RecordVisit []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			BookmarkID uuid.UUID
			VisitedAt  time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByHash        sync.RWMutex
	lockActiveHashExists sync.RWMutex
	lockCountByOwner     sync.RWMutex
	lockFind             sync.RWMutex
	lockCreate           sync.RWMutex
	lockRestore          sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSoftDelete       sync.RWMutex
	lockToggleFavorite   sync.RWMutex
	lockToggleArchive    sync.RWMutex
	lockRecordVisit      sync.RWMutex
}

func (mock *bookmarkRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	if mock.GetByIDFunc == nil {
		panic("bookmarkRepoMock.GetByIDFunc: method is nil but bookmarkRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		BookmarkID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, BookmarkID: bookmarkID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, bookmarkID)
}

func (mock *bookmarkRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	BookmarkID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) GetByHash(ctx context.Context, ownerID uuid.UUID, urlHash string) (*domain.Bookmark, error) {
	if mock.GetByHashFunc == nil {
		panic("bookmarkRepoMock.GetByHashFunc: method is nil but bookmarkRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		URLHash string
	}{Ctx: ctx, OwnerID: ownerID, URLHash: urlHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, ownerID, urlHash)
}

func (mock *bookmarkRepoMock) GetByHashCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	URLHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) ActiveHashExists(ctx context.Context, ownerID uuid.UUID, urlHash string, excludeID uuid.UUID) (bool, error) {
	if mock.ActiveHashExistsFunc == nil {
		panic("bookmarkRepoMock.ActiveHashExistsFunc: method is nil but bookmarkRepo.ActiveHashExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		URLHash   string
		ExcludeID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, URLHash: urlHash, ExcludeID: excludeID}
	mock.lockActiveHashExists.Lock()
	mock.calls.ActiveHashExists = append(mock.calls.ActiveHashExists, callInfo)
	mock.lockActiveHashExists.Unlock()
	return mock.ActiveHashExistsFunc(ctx, ownerID, urlHash, excludeID)
}

func (mock *bookmarkRepoMock) ActiveHashExistsCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	URLHash   string
	ExcludeID uuid.UUID
} {
	mock.lockActiveHashExists.RLock()
	calls := mock.calls.ActiveHashExists
	mock.lockActiveHashExists.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("bookmarkRepoMock.CountByOwnerFunc: method is nil but bookmarkRepo.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

func (mock *bookmarkRepoMock) CountByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Find(ctx context.Context, ownerID uuid.UUID, filter domain.BookmarkFilter) ([]domain.Bookmark, int, error) {
	if mock.FindFunc == nil {
		panic("bookmarkRepoMock.FindFunc: method is nil but bookmarkRepo.Find was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.BookmarkFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, ownerID, filter)
}

func (mock *bookmarkRepoMock) FindCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.BookmarkFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if mock.CreateFunc == nil {
		panic("bookmarkRepoMock.CreateFunc: method is nil but bookmarkRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookmarkRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Restore(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if mock.RestoreFunc == nil {
		panic("bookmarkRepoMock.RestoreFunc: method is nil but bookmarkRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{Ctx: ctx, B: b}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, b)
}

func (mock *bookmarkRepoMock) RestoreCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Update(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if mock.UpdateFunc == nil {
		panic("bookmarkRepoMock.UpdateFunc: method is nil but bookmarkRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{Ctx: ctx, B: b}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, b)
}

func (mock *bookmarkRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) SoftDelete(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("bookmarkRepoMock.SoftDeleteFunc: method is nil but bookmarkRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		BookmarkID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, BookmarkID: bookmarkID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, ownerID, bookmarkID)
}

func (mock *bookmarkRepoMock) SoftDeleteCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	BookmarkID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) ToggleFavorite(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	if mock.ToggleFavoriteFunc == nil {
		panic("bookmarkRepoMock.ToggleFavoriteFunc: method is nil but bookmarkRepo.ToggleFavorite was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		BookmarkID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, BookmarkID: bookmarkID}
	mock.lockToggleFavorite.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, callInfo)
	mock.lockToggleFavorite.Unlock()
	return mock.ToggleFavoriteFunc(ctx, ownerID, bookmarkID)
}

func (mock *bookmarkRepoMock) ToggleFavoriteCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	BookmarkID uuid.UUID
} {
	mock.lockToggleFavorite.RLock()
	calls := mock.calls.ToggleFavorite
	mock.lockToggleFavorite.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) ToggleArchive(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID) (*domain.Bookmark, error) {
	if mock.ToggleArchiveFunc == nil {
		panic("bookmarkRepoMock.ToggleArchiveFunc: method is nil but bookmarkRepo.ToggleArchive was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		BookmarkID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, BookmarkID: bookmarkID}
	mock.lockToggleArchive.Lock()
	mock.calls.ToggleArchive = append(mock.calls.ToggleArchive, callInfo)
	mock.lockToggleArchive.Unlock()
	return mock.ToggleArchiveFunc(ctx, ownerID, bookmarkID)
}

func (mock *bookmarkRepoMock) ToggleArchiveCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	BookmarkID uuid.UUID
} {
	mock.lockToggleArchive.RLock()
	calls := mock.calls.ToggleArchive
	mock.lockToggleArchive.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) RecordVisit(ctx context.Context, ownerID uuid.UUID, bookmarkID uuid.UUID, visitedAt time.Time) error {
	if mock.RecordVisitFunc == nil {
		panic("bookmarkRepoMock.RecordVisitFunc: method is nil but bookmarkRepo.RecordVisit was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		BookmarkID uuid.UUID
		VisitedAt  time.Time
	}{Ctx: ctx, OwnerID: ownerID, BookmarkID: bookmarkID, VisitedAt: visitedAt}
	mock.lockRecordVisit.Lock()
	mock.calls.RecordVisit = append(mock.calls.RecordVisit, callInfo)
	mock.lockRecordVisit.Unlock()
	return mock.RecordVisitFunc(ctx, ownerID, bookmarkID, visitedAt)
}

func (mock *bookmarkRepoMock) RecordVisitCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	BookmarkID uuid.UUID
	VisitedAt  time.Time
} {
	mock.lockRecordVisit.RLock()
	calls := mock.calls.RecordVisit
	mock.lockRecordVisit.RUnlock()
	return calls
}
