package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var _ authClient = &authClientMock{}

type authClientMock struct {
	LoginFunc         func(ctx context.Context, cred domain.Credentials) (*domain.AuthResult, error)
	RegisterFunc      func(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	UpdateProfileFunc func(ctx context.Context, changes domain.ProfileChanges) (json.RawMessage, error)

	calls struct {
		Login []struct {
			Ctx  context.Context
			Cred domain.Credentials
		}
		Register []struct {
			Ctx context.Context
			Reg domain.Registration
		}
		UpdateProfile []struct {
			Ctx     context.Context
			Changes domain.ProfileChanges
		}
	}
	lockLogin         sync.RWMutex
	lockRegister      sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *authClientMock) Login(ctx context.Context, cred domain.Credentials) (*domain.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authClientMock.LoginFunc: method is nil but authClient.Login was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Cred domain.Credentials
	}{
		Ctx:  ctx,
		Cred: cred,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, cred)
}

func (mock *authClientMock) LoginCalls() []struct {
	Ctx  context.Context
	Cred domain.Credentials
} {
	var calls []struct {
		Ctx  context.Context
		Cred domain.Credentials
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authClientMock) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authClientMock.RegisterFunc: method is nil but authClient.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Reg domain.Registration
	}{
		Ctx: ctx,
		Reg: reg,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, reg)
}

func (mock *authClientMock) RegisterCalls() []struct {
	Ctx context.Context
	Reg domain.Registration
} {
	var calls []struct {
		Ctx context.Context
		Reg domain.Registration
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authClientMock) UpdateProfile(ctx context.Context, changes domain.ProfileChanges) (json.RawMessage, error) {
	if mock.UpdateProfileFunc == nil {
		panic("authClientMock.UpdateProfileFunc: method is nil but authClient.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Changes domain.ProfileChanges
	}{
		Ctx:     ctx,
		Changes: changes,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, changes)
}

func (mock *authClientMock) UpdateProfileCalls() []struct {
	Ctx     context.Context
	Changes domain.ProfileChanges
} {
	var calls []struct {
		Ctx     context.Context
		Changes domain.ProfileChanges
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
