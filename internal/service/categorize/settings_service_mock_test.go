package categorize

import (
	"context"
	"sync"

	"github.com/markstash/backend/internal/domain"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetOrCreateFunc func(ctx context.Context) (*domain.UserSettings, error)

	calls struct {
		GetOrCreate []struct {
			Ctx context.Context
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *settingsServiceMock) GetOrCreate(ctx context.Context) (*domain.UserSettings, error) {
	if mock.GetOrCreateFunc == nil {
		panic("settingsServiceMock.GetOrCreateFunc: method is nil but settingsService.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx)
}

func (mock *settingsServiceMock) GetOrCreateCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
