package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	GetUserFunc    func(ctx context.Context, id string) (*domain.User, error)
	CreateUserFunc func(ctx context.Context, input user.CreateInput) (*domain.User, error)
	UpdateUserFunc func(ctx context.Context, current domain.User, input user.UpdateInput) (*domain.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
		GetUser []struct {
			Ctx context.Context
			ID  string
		}
		CreateUser []struct {
			Ctx   context.Context
			Input user.CreateInput
		}
		UpdateUser []struct {
			Ctx     context.Context
			Current domain.User
			Input   user.UpdateInput
		}
		DeleteUser []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListUsers  sync.RWMutex
	lockGetUser    sync.RWMutex
	lockCreateUser sync.RWMutex
	lockUpdateUser sync.RWMutex
	lockDeleteUser sync.RWMutex
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userServiceMock) CreateUser(ctx context.Context, input user.CreateInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but userService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, input)
}

func (mock *userServiceMock) CreateUserCalls() []struct {
	Ctx   context.Context
	Input user.CreateInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateUser(ctx context.Context, current domain.User, input user.UpdateInput) (*domain.User, error) {
	if mock.UpdateUserFunc == nil {
		panic("userServiceMock.UpdateUserFunc: method is nil but userService.UpdateUser was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Current domain.User
		Input   user.UpdateInput
	}{Ctx: ctx, Current: current, Input: input}
	mock.lockUpdateUser.Lock()
	mock.calls.UpdateUser = append(mock.calls.UpdateUser, callInfo)
	mock.lockUpdateUser.Unlock()
	return mock.UpdateUserFunc(ctx, current, input)
}

func (mock *userServiceMock) UpdateUserCalls() []struct {
	Ctx     context.Context
	Current domain.User
	Input   user.UpdateInput
} {
	mock.lockUpdateUser.RLock()
	calls := mock.calls.UpdateUser
	mock.lockUpdateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteUser(ctx context.Context, id string) error {
	if mock.DeleteUserFunc == nil {
		panic("userServiceMock.DeleteUserFunc: method is nil but userService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, id)
}

func (mock *userServiceMock) DeleteUserCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}
