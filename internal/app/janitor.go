package app

import (
	"context"
	"log/slog"
	"time"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// runJanitor purges expired sessions every interval until ctx is done.
// A non-positive interval disables it.
func runJanitor(ctx context.Context, purger sessionPurger, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		logger.Info("session janitor disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// The service logs failures; the next tick retries.
			_, _ = purger.PurgeExpired(ctx, now)
		}
	}
}
