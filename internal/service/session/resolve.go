package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/judgment-web/internal/auth"
	"github.com/heartmarshall/judgment-web/internal/domain"
)

func newSessionID() string {
	return uuid.NewString()
}

// Resolve loads the session identified by sessionID.
// Returns ErrUnauthorized if there is no usable session. Sessions that
// cannot be decrypted or decoded, or whose token has expired, are deleted.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}

	sealed, err := s.store.Get(ctx, sessionID, KeyToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("session.Resolve get token: %w", err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		return nil, s.discard(ctx, sessionID, "token cannot be opened")
	}

	exp, hasExp := auth.TokenExpiry(string(token))
	if hasExp && !exp.After(s.now()) {
		return nil, s.discard(ctx, sessionID, "token expired")
	}

	raw, err := s.store.Get(ctx, sessionID, KeyUser)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.discard(ctx, sessionID, "user missing")
		}
		return nil, fmt.Errorf("session.Resolve get user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, s.discard(ctx, sessionID, "user cannot be decoded")
	}

	sess := &domain.Session{
		ID:    sessionID,
		Token: string(token),
		User:  user,
	}
	if hasExp {
		sess.ExpiresAt = exp
	}
	return sess, nil
}

// discard deletes an unusable session and reports it as absent.
func (s *Service) discard(ctx context.Context, sessionID, reason string) error {
	s.log.InfoContext(ctx, "discarding session", slog.String("reason", reason))
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("session.Resolve delete: %w", err)
	}
	return domain.ErrUnauthorized
}
