package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/auth"
	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Login signs in with email and password and opens a new session.
// Backend failures are returned as they are; their message is what the
// login form shows.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.auth.Login(ctx, domain.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, fmt.Errorf("session.Login: %w", err)
	}

	sess, err := s.open(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("session.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", sess.User.ID))
	return sess, nil
}

// Register creates an account and opens a session for it. The password
// checks run before any request is made.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.auth.Register(ctx, domain.Registration{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("session.Register: %w", err)
	}

	sess, err := s.open(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("session.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", sess.User.ID))
	return sess, nil
}

// open persists token and user under a fresh session id.
func (s *Service) open(ctx context.Context, res *domain.AuthResult) (*domain.Session, error) {
	sealed, err := s.sealer.Seal([]byte(res.Token))
	if err != nil {
		return nil, fmt.Errorf("seal token: %w", err)
	}

	user, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	sess := &domain.Session{
		ID:        s.newID(),
		Token:     res.Token,
		User:      res.User,
		ExpiresAt: auth.SessionExpiry(res.Token, s.now(), s.ttl),
	}

	err = s.store.Put(ctx, sess.ID, map[string][]byte{
		KeyToken: sealed,
		KeyUser:  user,
	}, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}
