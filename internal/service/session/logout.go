package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Logout deletes the token and user of the session. No backend call is
// made. An empty or unknown session id is not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session closed")
	return nil
}

// PurgeExpired removes sessions that expired at or before cutoff.
// This is a maintenance operation.
func (s *Service) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.store.PurgeExpired(ctx, cutoff)
	if err != nil {
		s.log.ErrorContext(ctx, "session purge failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("session.PurgeExpired: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "purged expired sessions", slog.Int("count", count))
	}

	return count, nil
}
