// Command purge-sessions deletes expired browser sessions from the
// configured session store. The server purges on its own schedule; this
// command is for cron-driven cleanup of a postgres store or for compacting
// a bolt file while the server is stopped.
//
// Flags:
//
//	--grace  keep sessions that expired less than this long ago (default: 0)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/judgment-web/internal/app"
	"github.com/heartmarshall/judgment-web/internal/config"
)

func main() {
	graceFlag := flag.Duration("grace", 0, "keep sessions that expired less than this long ago")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Session.Store == config.StoreMemory {
		logger.Error("nothing to purge: session store is in memory")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open session store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cutoff := time.Now().Add(-*graceFlag)

	purged, err := store.PurgeExpired(ctx, cutoff)
	closeStore()
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Time("cutoff", cutoff),
		slog.String("store", cfg.Session.Store),
	)
}
