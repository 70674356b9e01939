package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var _ userAPI = &userAPIMock{}

type userAPIMock struct {
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	CreateUserFunc func(ctx context.Context, p domain.NewUserPayload) (*domain.User, error)
	UpdateUserFunc func(ctx context.Context, id string, p domain.UserChanges) (*domain.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
		CreateUser []struct {
			Ctx context.Context
			P   domain.NewUserPayload
		}
		UpdateUser []struct {
			Ctx context.Context
			ID  string
			P   domain.UserChanges
		}
		DeleteUser []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListUsers  sync.RWMutex
	lockCreateUser sync.RWMutex
	lockUpdateUser sync.RWMutex
	lockDeleteUser sync.RWMutex
}

func (mock *userAPIMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userAPIMock.ListUsersFunc: method is nil but userAPI.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userAPIMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userAPIMock) CreateUser(ctx context.Context, p domain.NewUserPayload) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userAPIMock.CreateUserFunc: method is nil but userAPI.CreateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.NewUserPayload
	}{Ctx: ctx, P: p}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, p)
}

func (mock *userAPIMock) CreateUserCalls() []struct {
	Ctx context.Context
	P   domain.NewUserPayload
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userAPIMock) UpdateUser(ctx context.Context, id string, p domain.UserChanges) (*domain.User, error) {
	if mock.UpdateUserFunc == nil {
		panic("userAPIMock.UpdateUserFunc: method is nil but userAPI.UpdateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		P   domain.UserChanges
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdateUser.Lock()
	mock.calls.UpdateUser = append(mock.calls.UpdateUser, callInfo)
	mock.lockUpdateUser.Unlock()
	return mock.UpdateUserFunc(ctx, id, p)
}

func (mock *userAPIMock) UpdateUserCalls() []struct {
	Ctx context.Context
	ID  string
	P   domain.UserChanges
} {
	mock.lockUpdateUser.RLock()
	calls := mock.calls.UpdateUser
	mock.lockUpdateUser.RUnlock()
	return calls
}

func (mock *userAPIMock) DeleteUser(ctx context.Context, id string) error {
	if mock.DeleteUserFunc == nil {
		panic("userAPIMock.DeleteUserFunc: method is nil but userAPI.DeleteUser was just called")
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

func (mock *userAPIMock) DeleteUserCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}
