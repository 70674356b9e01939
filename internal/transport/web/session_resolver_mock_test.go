package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var _ SessionResolver = &SessionResolverMock{}

type SessionResolverMock struct {
	ResolveFunc func(ctx context.Context, sessionID string) (*domain.Session, error)

	calls struct {
		Resolve []struct {
			Ctx       context.Context
			SessionID string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *SessionResolverMock) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if mock.ResolveFunc == nil {
		panic("SessionResolverMock.ResolveFunc: method is nil but SessionResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, sessionID)
}

func (mock *SessionResolverMock) ResolveCalls() []struct {
	Ctx       context.Context
	SessionID string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
