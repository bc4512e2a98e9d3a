package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/bookmarks"
)

var _ bookmarksService = &bookmarksServiceMock{}

type bookmarksServiceMock struct {
	CreateFunc         func(ctx context.Context, input bookmarks.CreateInput) (*bookmarks.CreateResult, error)
	GetFunc            func(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	FindFunc           func(ctx context.Context, input bookmarks.FindInput) (*bookmarks.ListResult, error)
	UpdateFunc         func(ctx context.Context, input bookmarks.UpdateInput) (*domain.BookmarkView, error)
	DeleteFunc         func(ctx context.Context, bookmarkID uuid.UUID) error
	ToggleFavoriteFunc func(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	ToggleArchiveFunc  func(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	RecordVisitFunc    func(ctx context.Context, bookmarkID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input bookmarks.CreateInput
		}
		Get []struct {
			Ctx        context.Context
			BookmarkID uuid.UUID
		}
		Find []struct {
			Ctx   context.Context
			Input bookmarks.FindInput
		}
		Update []struct {
			Ctx   context.Context
			Input bookmarks.UpdateInput
		}
		Delete []struct {
			Ctx        context.Context
			BookmarkID uuid.UUID
		}
		ToggleFavorite []struct {
			Ctx        context.Context
			BookmarkID uuid.UUID
		}
		ToggleArchive []struct {
			Ctx        context.Context
			BookmarkID uuid.UUID
		}
		RecordVisit []struct {
			Ctx        context.Context
			BookmarkID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGet            sync.RWMutex
	lockFind           sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockToggleFavorite sync.RWMutex
	lockToggleArchive  sync.RWMutex
	lockRecordVisit    sync.RWMutex
}

func (mock *bookmarksServiceMock) Create(ctx context.Context, input bookmarks.CreateInput) (*bookmarks.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("bookmarksServiceMock.CreateFunc: method is nil but bookmarksService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input bookmarks.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *bookmarksServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input bookmarks.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) Get(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	if mock.GetFunc == nil {
		panic("bookmarksServiceMock.GetFunc: method is nil but bookmarksService.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BookmarkID uuid.UUID
	}{Ctx: ctx, BookmarkID: bookmarkID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, bookmarkID)
}

func (mock *bookmarksServiceMock) GetCalls() []struct {
	Ctx        context.Context
	BookmarkID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) Find(ctx context.Context, input bookmarks.FindInput) (*bookmarks.ListResult, error) {
	if mock.FindFunc == nil {
		panic("bookmarksServiceMock.FindFunc: method is nil but bookmarksService.Find was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input bookmarks.FindInput
	}{Ctx: ctx, Input: input}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, input)
}

func (mock *bookmarksServiceMock) FindCalls() []struct {
	Ctx   context.Context
	Input bookmarks.FindInput
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) Update(ctx context.Context, input bookmarks.UpdateInput) (*domain.BookmarkView, error) {
	if mock.UpdateFunc == nil {
		panic("bookmarksServiceMock.UpdateFunc: method is nil but bookmarksService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input bookmarks.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *bookmarksServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input bookmarks.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) Delete(ctx context.Context, bookmarkID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookmarksServiceMock.DeleteFunc: method is nil but bookmarksService.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BookmarkID uuid.UUID
	}{Ctx: ctx, BookmarkID: bookmarkID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, bookmarkID)
}

func (mock *bookmarksServiceMock) DeleteCalls() []struct {
	Ctx        context.Context
	BookmarkID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) ToggleFavorite(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	if mock.ToggleFavoriteFunc == nil {
		panic("bookmarksServiceMock.ToggleFavoriteFunc: method is nil but bookmarksService.ToggleFavorite was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BookmarkID uuid.UUID
	}{Ctx: ctx, BookmarkID: bookmarkID}
	mock.lockToggleFavorite.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, callInfo)
	mock.lockToggleFavorite.Unlock()
	return mock.ToggleFavoriteFunc(ctx, bookmarkID)
}

func (mock *bookmarksServiceMock) ToggleFavoriteCalls() []struct {
	Ctx        context.Context
	BookmarkID uuid.UUID
} {
	mock.lockToggleFavorite.RLock()
	calls := mock.calls.ToggleFavorite
	mock.lockToggleFavorite.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) ToggleArchive(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error) {
	if mock.ToggleArchiveFunc == nil {
		panic("bookmarksServiceMock.ToggleArchiveFunc: method is nil but bookmarksService.ToggleArchive was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BookmarkID uuid.UUID
	}{Ctx: ctx, BookmarkID: bookmarkID}
	mock.lockToggleArchive.Lock()
	mock.calls.ToggleArchive = append(mock.calls.ToggleArchive, callInfo)
	mock.lockToggleArchive.Unlock()
	return mock.ToggleArchiveFunc(ctx, bookmarkID)
}

func (mock *bookmarksServiceMock) ToggleArchiveCalls() []struct {
	Ctx        context.Context
	BookmarkID uuid.UUID
} {
	mock.lockToggleArchive.RLock()
	calls := mock.calls.ToggleArchive
	mock.lockToggleArchive.RUnlock()
	return calls
}

func (mock *bookmarksServiceMock) RecordVisit(ctx context.Context, bookmarkID uuid.UUID) error {
	if mock.RecordVisitFunc == nil {
		panic("bookmarksServiceMock.RecordVisitFunc: method is nil but bookmarksService.RecordVisit was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BookmarkID uuid.UUID
	}{Ctx: ctx, BookmarkID: bookmarkID}
	mock.lockRecordVisit.Lock()
	mock.calls.RecordVisit = append(mock.calls.RecordVisit, callInfo)
	mock.lockRecordVisit.Unlock()
	return mock.RecordVisitFunc(ctx, bookmarkID)
}

func (mock *bookmarksServiceMock) RecordVisitCalls() []struct {
	Ctx        context.Context
	BookmarkID uuid.UUID
} {
	mock.lockRecordVisit.RLock()
	calls := mock.calls.RecordVisit
	mock.lockRecordVisit.RUnlock()
	return calls
}
