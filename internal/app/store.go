package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	boltsession "github.com/heartmarshall/judgment-web/internal/adapter/bolt/session"
	memsession "github.com/heartmarshall/judgment-web/internal/adapter/memory/session"
	"github.com/heartmarshall/judgment-web/internal/adapter/postgres"
	pgsession "github.com/heartmarshall/judgment-web/internal/adapter/postgres/session"
	"github.com/heartmarshall/judgment-web/internal/config"
)

// SessionStore is the durable session storage selected by
// session.store.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
	Ping(ctx context.Context) error
}

// OpenSessionStore opens the configured store. The returned func releases
// it and must be called once the store is no longer used.
func OpenSessionStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.StoreBolt:
		store, err := boltsession.Open(cfg.Session.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := store.Close(); err != nil {
				logger.Error("close session store", slog.String("error", err.Error()))
			}
		}
		return store, closeFn, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Int("count", applied))
		}
		return pgsession.New(pool), pool.Close, nil

	case config.StoreMemory:
		logger.Warn("sessions are kept in memory and lost on restart")
		return memsession.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
