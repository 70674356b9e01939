package session

import (
	"context"
	"sync"
	"time"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	GetFunc          func(ctx context.Context, sessionID string, key string) ([]byte, error)
	PutFunc          func(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error
	DeleteFunc       func(ctx context.Context, sessionID string) error
	PurgeExpiredFunc func(ctx context.Context, now time.Time) (int, error)

	calls struct {
		Get []struct {
			Ctx       context.Context
			SessionID string
			Key       string
		}
		Put []struct {
			Ctx       context.Context
			SessionID string
			Entries   map[string][]byte
			ExpiresAt time.Time
		}
		Delete []struct {
			Ctx       context.Context
			SessionID string
		}
		PurgeExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockGet          sync.RWMutex
	lockPut          sync.RWMutex
	lockDelete       sync.RWMutex
	lockPurgeExpired sync.RWMutex
}

func (mock *sessionStoreMock) Get(ctx context.Context, sessionID string, key string) ([]byte, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Key       string
	}{Ctx: ctx, SessionID: sessionID, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, sessionID, key)
}

func (mock *sessionStoreMock) GetCalls() []struct {
	Ctx       context.Context
	SessionID string
	Key       string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Put(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error {
	if mock.PutFunc == nil {
		panic("sessionStoreMock.PutFunc: method is nil but sessionStore.Put was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Entries   map[string][]byte
		ExpiresAt time.Time
	}{Ctx: ctx, SessionID: sessionID, Entries: entries, ExpiresAt: expiresAt}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, sessionID, entries, expiresAt)
}

func (mock *sessionStoreMock) PutCalls() []struct {
	Ctx       context.Context
	SessionID string
	Entries   map[string][]byte
	ExpiresAt time.Time
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Delete(ctx context.Context, sessionID string) error {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, sessionID)
}

func (mock *sessionStoreMock) DeleteCalls() []struct {
	Ctx       context.Context
	SessionID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionStoreMock) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	if mock.PurgeExpiredFunc == nil {
		panic("sessionStoreMock.PurgeExpiredFunc: method is nil but sessionStore.PurgeExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockPurgeExpired.Lock()
	mock.calls.PurgeExpired = append(mock.calls.PurgeExpired, callInfo)
	mock.lockPurgeExpired.Unlock()
	return mock.PurgeExpiredFunc(ctx, now)
}

func (mock *sessionStoreMock) PurgeExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockPurgeExpired.RLock()
	calls := mock.calls.PurgeExpired
	mock.lockPurgeExpired.RUnlock()
	return calls
}
