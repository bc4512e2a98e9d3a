package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc    func(ctx context.Context, ownerID uuid.UUID) (*domain.UserSettings, error)
	InsertFunc func(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error)
	UpdateFunc func(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		Get []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Insert []struct {
			Ctx context.Context
			S   *domain.UserSettings
		}
		Update []struct {
			Ctx context.Context
			S   *domain.UserSettings
		}
	}
	lockGet    sync.RWMutex
	lockInsert sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, ownerID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Insert(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	if mock.InsertFunc == nil {
		panic("settingsRepoMock.InsertFunc: method is nil but settingsRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.UserSettings
	}{Ctx: ctx, S: s}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, s)
}

func (mock *settingsRepoMock) InsertCalls() []struct {
	Ctx context.Context
	S   *domain.UserSettings
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Update(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	if mock.UpdateFunc == nil {
		panic("settingsRepoMock.UpdateFunc: method is nil but settingsRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.UserSettings
	}{Ctx: ctx, S: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *settingsRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   *domain.UserSettings
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
