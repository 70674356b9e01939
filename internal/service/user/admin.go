package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/pkg/ctxutil"
)

// ListUsers returns every account (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// GetUser finds one account in the listing; the backend has no single-user
// read endpoint. Returns ErrNotFound for an unknown id.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user.GetUser %s: %w", id, domain.ErrNotFound)
}

// CreateUser creates an account (admin only).
func (s *Service) CreateUser(ctx context.Context, input CreateInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateUser(ctx, domain.NewUserPayload{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("target_user_id", created.ID),
		slog.String("role", created.Role.String()),
	)
	return created, nil
}

// UpdateUser changes an account (admin only). current is the stored state
// of the target, used to refuse a role change on the caller's own account
// before any request is made. The returned user is the backend reply, or
// the submitted fields applied to current when the reply is empty.
func (s *Service) UpdateUser(ctx context.Context, current domain.User, input UpdateInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if callerID == current.ID && input.Role != current.Role {
		return nil, domain.NewValidationError("role", "You cannot change your own role")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	changes := input.changes()
	updated, err := s.api.UpdateUser(ctx, current.ID, changes)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	if updated == nil {
		patched := current
		patched.Name = changes.Name
		patched.Email = changes.Email
		patched.Role = changes.Role
		updated = &patched
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("target_user_id", current.ID),
		slog.Bool("password_reset", changes.Password != nil),
	)
	return updated, nil
}

// DeleteUser removes an account (admin only). Deleting one's own account is
// refused before any request is made.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == id {
		return domain.NewValidationError("id", "You cannot delete your own account")
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("target_user_id", id))
	return nil
}
