package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/judgment"
)

var _ judgmentService = &judgmentServiceMock{}

type judgmentServiceMock struct {
	ListFunc   func(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Judgment, error)
	CreateFunc func(ctx context.Context, input judgment.Input) (*domain.CreatedJudgment, error)
	UpdateFunc func(ctx context.Context, id string, input judgment.Input) error
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		List []struct {
			Ctx context.Context
			Q   domain.ListQuery
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx   context.Context
			Input judgment.Input
		}
		Update []struct {
			Ctx   context.Context
			ID    string
			Input judgment.Input
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *judgmentServiceMock) List(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error) {
	if mock.ListFunc == nil {
		panic("judgmentServiceMock.ListFunc: method is nil but judgmentService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ListQuery
	}{Ctx: ctx, Q: q}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, q)
}

func (mock *judgmentServiceMock) ListCalls() []struct {
	Ctx context.Context
	Q   domain.ListQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *judgmentServiceMock) Get(ctx context.Context, id string) (*domain.Judgment, error) {
	if mock.GetFunc == nil {
		panic("judgmentServiceMock.GetFunc: method is nil but judgmentService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *judgmentServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *judgmentServiceMock) Create(ctx context.Context, input judgment.Input) (*domain.CreatedJudgment, error) {
	if mock.CreateFunc == nil {
		panic("judgmentServiceMock.CreateFunc: method is nil but judgmentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input judgment.Input
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *judgmentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input judgment.Input
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *judgmentServiceMock) Update(ctx context.Context, id string, input judgment.Input) error {
	if mock.UpdateFunc == nil {
		panic("judgmentServiceMock.UpdateFunc: method is nil but judgmentService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Input judgment.Input
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *judgmentServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    string
	Input judgment.Input
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *judgmentServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("judgmentServiceMock.DeleteFunc: method is nil but judgmentService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *judgmentServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
