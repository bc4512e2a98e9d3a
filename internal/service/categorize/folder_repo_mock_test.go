package categorize

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	GetByNameFunc func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)

	calls struct {
		GetByName []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Name    string
		}
	}
	lockGetByName sync.RWMutex
}

func (mock *folderRepoMock) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	if mock.GetByNameFunc == nil {
		panic("folderRepoMock.GetByNameFunc: method is nil but folderRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Name    string
	}{Ctx: ctx, OwnerID: ownerID, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, ownerID, name)
}

func (mock *folderRepoMock) GetByNameCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Name    string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}
