package bookmarks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	GetByIDFunc  func(ctx context.Context, ownerID uuid.UUID, folderID uuid.UUID) (*domain.Folder, error)
	GetByIDsFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Folder, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			FolderID uuid.UUID
		}
		GetByIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			IDs     []uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *folderRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, folderID uuid.UUID) (*domain.Folder, error) {
	if mock.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc: method is nil but folderRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		FolderID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, FolderID: folderID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, folderID)
}

func (mock *folderRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	FolderID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *folderRepoMock) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Folder, error) {
	if mock.GetByIDsFunc == nil {
		panic("folderRepoMock.GetByIDsFunc: method is nil but folderRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		IDs     []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ownerID, ids)
}

func (mock *folderRepoMock) GetByIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	IDs     []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
