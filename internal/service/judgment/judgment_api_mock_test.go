package judgment

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var _ judgmentAPI = &judgmentAPIMock{}

type judgmentAPIMock struct {
	ListJudgmentsFunc  func(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error)
	GetJudgmentFunc    func(ctx context.Context, id string) (*domain.Judgment, error)
	CreateJudgmentFunc func(ctx context.Context, p domain.JudgmentPayload) (*domain.CreatedJudgment, error)
	UpdateJudgmentFunc func(ctx context.Context, id string, p domain.JudgmentPayload) error
	DeleteJudgmentFunc func(ctx context.Context, id string) error

	calls struct {
		ListJudgments []struct {
			Ctx context.Context
			Q   domain.ListQuery
		}
		GetJudgment []struct {
			Ctx context.Context
			ID  string
		}
		CreateJudgment []struct {
			Ctx context.Context
			P   domain.JudgmentPayload
		}
		UpdateJudgment []struct {
			Ctx context.Context
			ID  string
			P   domain.JudgmentPayload
		}
		DeleteJudgment []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListJudgments  sync.RWMutex
	lockGetJudgment    sync.RWMutex
	lockCreateJudgment sync.RWMutex
	lockUpdateJudgment sync.RWMutex
	lockDeleteJudgment sync.RWMutex
}

func (mock *judgmentAPIMock) ListJudgments(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error) {
	if mock.ListJudgmentsFunc == nil {
		panic("judgmentAPIMock.ListJudgmentsFunc: method is nil but judgmentAPI.ListJudgments was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ListQuery
	}{Ctx: ctx, Q: q}
	mock.lockListJudgments.Lock()
	mock.calls.ListJudgments = append(mock.calls.ListJudgments, callInfo)
	mock.lockListJudgments.Unlock()
	return mock.ListJudgmentsFunc(ctx, q)
}

func (mock *judgmentAPIMock) ListJudgmentsCalls() []struct {
	Ctx context.Context
	Q   domain.ListQuery
} {
	mock.lockListJudgments.RLock()
	calls := mock.calls.ListJudgments
	mock.lockListJudgments.RUnlock()
	return calls
}

func (mock *judgmentAPIMock) GetJudgment(ctx context.Context, id string) (*domain.Judgment, error) {
	if mock.GetJudgmentFunc == nil {
		panic("judgmentAPIMock.GetJudgmentFunc: method is nil but judgmentAPI.GetJudgment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetJudgment.Lock()
	mock.calls.GetJudgment = append(mock.calls.GetJudgment, callInfo)
	mock.lockGetJudgment.Unlock()
	return mock.GetJudgmentFunc(ctx, id)
}

func (mock *judgmentAPIMock) GetJudgmentCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetJudgment.RLock()
	calls := mock.calls.GetJudgment
	mock.lockGetJudgment.RUnlock()
	return calls
}

func (mock *judgmentAPIMock) CreateJudgment(ctx context.Context, p domain.JudgmentPayload) (*domain.CreatedJudgment, error) {
	if mock.CreateJudgmentFunc == nil {
		panic("judgmentAPIMock.CreateJudgmentFunc: method is nil but judgmentAPI.CreateJudgment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.JudgmentPayload
	}{Ctx: ctx, P: p}
	mock.lockCreateJudgment.Lock()
	mock.calls.CreateJudgment = append(mock.calls.CreateJudgment, callInfo)
	mock.lockCreateJudgment.Unlock()
	return mock.CreateJudgmentFunc(ctx, p)
}

func (mock *judgmentAPIMock) CreateJudgmentCalls() []struct {
	Ctx context.Context
	P   domain.JudgmentPayload
} {
	mock.lockCreateJudgment.RLock()
	calls := mock.calls.CreateJudgment
	mock.lockCreateJudgment.RUnlock()
	return calls
}

func (mock *judgmentAPIMock) UpdateJudgment(ctx context.Context, id string, p domain.JudgmentPayload) error {
	if mock.UpdateJudgmentFunc == nil {
		panic("judgmentAPIMock.UpdateJudgmentFunc: method is nil but judgmentAPI.UpdateJudgment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		P   domain.JudgmentPayload
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdateJudgment.Lock()
	mock.calls.UpdateJudgment = append(mock.calls.UpdateJudgment, callInfo)
	mock.lockUpdateJudgment.Unlock()
	return mock.UpdateJudgmentFunc(ctx, id, p)
}

func (mock *judgmentAPIMock) UpdateJudgmentCalls() []struct {
	Ctx context.Context
	ID  string
	P   domain.JudgmentPayload
} {
	mock.lockUpdateJudgment.RLock()
	calls := mock.calls.UpdateJudgment
	mock.lockUpdateJudgment.RUnlock()
	return calls
}

func (mock *judgmentAPIMock) DeleteJudgment(ctx context.Context, id string) error {
	if mock.DeleteJudgmentFunc == nil {
		panic("judgmentAPIMock.DeleteJudgmentFunc: method is nil but judgmentAPI.DeleteJudgment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteJudgment.Lock()
	mock.calls.DeleteJudgment = append(mock.calls.DeleteJudgment, callInfo)
	mock.lockDeleteJudgment.Unlock()
	return mock.DeleteJudgmentFunc(ctx, id)
}

func (mock *judgmentAPIMock) DeleteJudgmentCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteJudgment.RLock()
	calls := mock.calls.DeleteJudgment
	mock.lockDeleteJudgment.RUnlock()
	return calls
}
