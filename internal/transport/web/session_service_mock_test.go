package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	LoginFunc         func(ctx context.Context, input session.LoginInput) (*domain.Session, error)
	RegisterFunc      func(ctx context.Context, input session.RegisterInput) (*domain.Session, error)
	UpdateProfileFunc func(ctx context.Context, sess *domain.Session, input session.ProfileInput) (*domain.Session, error)
	LogoutFunc        func(ctx context.Context, sessionID string) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input session.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input session.RegisterInput
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Sess  *domain.Session
			Input session.ProfileInput
		}
		Logout []struct {
			Ctx       context.Context
			SessionID string
		}
	}
	lockLogin         sync.RWMutex
	lockRegister      sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockLogout        sync.RWMutex
}

func (mock *sessionServiceMock) Login(ctx context.Context, input session.LoginInput) (*domain.Session, error) {
	if mock.LoginFunc == nil {
		panic("sessionServiceMock.LoginFunc: method is nil but sessionService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *sessionServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input session.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Register(ctx context.Context, input session.RegisterInput) (*domain.Session, error) {
	if mock.RegisterFunc == nil {
		panic("sessionServiceMock.RegisterFunc: method is nil but sessionService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *sessionServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input session.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *sessionServiceMock) UpdateProfile(ctx context.Context, sess *domain.Session, input session.ProfileInput) (*domain.Session, error) {
	if mock.UpdateProfileFunc == nil {
		panic("sessionServiceMock.UpdateProfileFunc: method is nil but sessionService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Sess  *domain.Session
		Input session.ProfileInput
	}{Ctx: ctx, Sess: sess, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, sess, input)
}

func (mock *sessionServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Sess  *domain.Session
	Input session.ProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Logout(ctx context.Context, sessionID string) error {
	if mock.LogoutFunc == nil {
		panic("sessionServiceMock.LogoutFunc: method is nil but sessionService.Logout was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, sessionID)
}

func (mock *sessionServiceMock) LogoutCalls() []struct {
	Ctx       context.Context
	SessionID string
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
