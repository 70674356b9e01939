package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// ListUsers returns every account. Requires an admin token in ctx.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("backend.ListUsers: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// CreateUser creates an account.
func (c *Client) CreateUser(ctx context.Context, p domain.NewUserPayload) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPost, "/users", p, &u); err != nil {
		return nil, fmt.Errorf("backend.CreateUser: %w", err)
	}
	return &u, nil
}

// UpdateUser changes an account. The backend may answer with the updated
// user or with an empty body, in which case nil is returned.
func (c *Client) UpdateUser(ctx context.Context, id string, p domain.UserChanges) (*domain.User, error) {
	var u *domain.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), p, &u); err != nil {
		return nil, fmt.Errorf("backend.UpdateUser: %w", err)
	}
	return u, nil
}

// DeleteUser deletes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("backend.DeleteUser: %w", err)
	}
	return nil
}
