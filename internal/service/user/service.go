// Package user implements the admin user-management operations.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// userAPI defines the backend endpoints needed by the user service.
type userAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, p domain.NewUserPayload) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, p domain.UserChanges) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Service implements user management for admins.
type Service struct {
	log *slog.Logger
	api userAPI
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, api userAPI) *Service {
	return &Service{
		log: logger.With("service", "user"),
		api: api,
	}
}
