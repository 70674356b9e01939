package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/judgment-web/internal/adapter/backend"
	"github.com/heartmarshall/judgment-web/internal/auth"
	"github.com/heartmarshall/judgment-web/internal/config"
	"github.com/heartmarshall/judgment-web/internal/service/judgment"
	"github.com/heartmarshall/judgment-web/internal/service/session"
	"github.com/heartmarshall/judgment-web/internal/service/user"
	"github.com/heartmarshall/judgment-web/internal/transport/middleware"
	"github.com/heartmarshall/judgment-web/internal/transport/web"
)

// Run is the application entry point. It loads configuration, opens the
// session store, wires the services and serves the web frontend until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("backend", cfg.Backend.APIBase()),
		slog.String("session_store", cfg.Session.Store),
	)

	store, closeStore, err := OpenSessionStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer closeStore()

	sealer, err := auth.NewSealer(cfg.Session.Secret)
	if err != nil {
		return fmt.Errorf("token sealer: %w", err)
	}
	csrfKey, err := auth.DeriveKey(cfg.Session.Secret, auth.PurposeCSRF)
	if err != nil {
		return fmt.Errorf("csrf key: %w", err)
	}

	client := backend.New(cfg.Backend.APIBase(), cfg.Backend.Timeout, UserAgent(), logger)

	sessions := session.NewService(logger, store, sealer, client, cfg.Session.TTL)
	judgments := judgment.NewService(logger, client)
	users := user.NewService(logger, client)

	renderer, err := web.NewRenderer(logger, cfg.Session.CookieSecure)
	if err != nil {
		return err
	}
	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}
	resp := web.NewResponder(renderer, sessions, cookie, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Sessions:      sessions,
		Cookie:        cookie,
		CSRFKey:       csrfKey,
		CSRF:          cfg.CSRF,
		Limiter:       limiter,
		AuthPerMinute: cfg.RateLimit.AuthPerMinute,
		Renderer:      renderer,
		Auth:          web.NewAuthHandler(sessions, resp, logger),
		Judgments:     web.NewJudgmentHandler(judgments, resp, logger),
		Users:         web.NewUserHandler(users, resp, logger),
		Health: web.NewHealthHandler(map[string]web.Pinger{
			"session_store": store,
			"backend":       client,
		}, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		runJanitor(gctx, sessions, cfg.Session.PurgeInterval, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
