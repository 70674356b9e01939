package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Login exchanges credentials for a token and the user.
func (c *Client) Login(ctx context.Context, cred domain.Credentials) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.doWithFallback(ctx, http.MethodPost, "/auth/login", cred, &res, "Login failed"); err != nil {
		return nil, fmt.Errorf("backend.Login: %w", err)
	}
	return &res, nil
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.doWithFallback(ctx, http.MethodPost, "/auth/register", reg, &res, "Registration failed"); err != nil {
		return nil, fmt.Errorf("backend.Register: %w", err)
	}
	return &res, nil
}

// UpdateProfile sends the changed profile fields and returns the raw reply
// body, which callers merge into the stored user. On failure the message is
// the JSON "error" field, else the raw body text, else "Update failed".
func (c *Client) UpdateProfile(ctx context.Context, changes domain.ProfileChanges) (json.RawMessage, error) {
	resp, err := c.send(ctx, http.MethodPut, "/auth/me", changes)
	if err != nil {
		return nil, fmt.Errorf("backend.UpdateProfile: %w", err)
	}

	if resp.status < 200 || resp.status > 299 {
		msg := errorField(resp.body)
		if msg == "" {
			msg = strings.TrimSpace(string(resp.body))
		}
		if msg == "" {
			msg = "Update failed"
		}
		return nil, fmt.Errorf("backend.UpdateProfile: %w", &domain.APIError{
			Kind:    domain.KindFromStatus(resp.status),
			Status:  resp.status,
			Message: msg,
		})
	}

	return json.RawMessage(resp.body), nil
}
