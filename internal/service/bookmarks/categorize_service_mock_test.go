package bookmarks

import (
	"context"
	"sync"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/categorize"
)

var _ categorizeService = &categorizeServiceMock{}

type categorizeServiceMock struct {
	CategorizeFunc func(ctx context.Context, draft categorize.Draft) (*domain.CategorizationOutcome, error)

	calls struct {
		Categorize []struct {
			Ctx   context.Context
			Draft categorize.Draft
		}
	}
	lockCategorize sync.RWMutex
}

func (mock *categorizeServiceMock) Categorize(ctx context.Context, draft categorize.Draft) (*domain.CategorizationOutcome, error) {
	if mock.CategorizeFunc == nil {
		panic("categorizeServiceMock.CategorizeFunc: method is nil but categorizeService.Categorize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft categorize.Draft
	}{Ctx: ctx, Draft: draft}
	mock.lockCategorize.Lock()
	mock.calls.Categorize = append(mock.calls.Categorize, callInfo)
	mock.lockCategorize.Unlock()
	return mock.CategorizeFunc(ctx, draft)
}

func (mock *categorizeServiceMock) CategorizeCalls() []struct {
	Ctx   context.Context
	Draft categorize.Draft
} {
	mock.lockCategorize.RLock()
	calls := mock.calls.Categorize
	mock.lockCategorize.RUnlock()
	return calls
}
