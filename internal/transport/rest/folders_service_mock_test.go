package rest

import (
	"context"
	"sync"

	"github.com/markstash/backend/internal/domain"
)

var _ foldersService = &foldersServiceMock{}

type foldersServiceMock struct {
	ListFunc func(ctx context.Context) ([]domain.Folder, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *foldersServiceMock) List(ctx context.Context) ([]domain.Folder, error) {
	if mock.ListFunc == nil {
		panic("foldersServiceMock.ListFunc: method is nil but foldersService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *foldersServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
