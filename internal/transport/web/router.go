package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/heartmarshall/judgment-web/internal/config"
	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/transport/middleware"
)

// SessionResolver loads the session named by the cookie.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Logger        *slog.Logger
	Sessions      SessionResolver
	Cookie        middleware.SessionCookie
	CSRFKey       []byte
	CSRF          config.CSRFConfig
	Limiter       *middleware.RateLimiter
	AuthPerMinute int

	Renderer  *Renderer
	Auth      *AuthHandler
	Judgments *JudgmentHandler
	Users     *UserHandler
	Health    *HealthHandler
}

// NewRouter builds the application's HTTP handler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.Recovery(cfg.Logger))

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)
	r.Handle("/static/*", StaticHandler())

	pages := middleware.Chain(
		middleware.LoadSession(cfg.Sessions, cfg.Cookie, cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.CSRF(cfg.CSRFKey, cfg.CSRF, csrfFailure(cfg.Renderer, cfg.Logger)),
		middleware.NoStore,
	)
	r.NotFound(pages(http.HandlerFunc(cfg.Renderer.NotFound)).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(pages)

		limit := cfg.Limiter.Limit(cfg.AuthPerMinute)

		r.Get("/", cfg.Auth.Home)
		r.Get("/login", cfg.Auth.LoginForm)
		r.With(limit).Post("/login", cfg.Auth.Login)
		r.Get("/register", cfg.Auth.RegisterForm)
		r.With(limit).Post("/register", cfg.Auth.Register)
		r.Post("/logout", cfg.Auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/profile", cfg.Auth.Profile)
			r.Post("/profile", cfg.Auth.UpdateProfile)

			r.Route("/judgments", func(r chi.Router) {
				r.Get("/", cfg.Judgments.List)
				r.Post("/", cfg.Judgments.Create)
				r.Get("/new", cfg.Judgments.New)
				r.Get("/{id}", cfg.Judgments.Detail)
				r.Post("/{id}", cfg.Judgments.Update)
				r.Get("/{id}/edit", cfg.Judgments.Edit)
				r.Get("/{id}/delete", cfg.Judgments.ConfirmDelete)
				r.Post("/{id}/delete", cfg.Judgments.Delete)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", cfg.Users.List)
				r.Post("/", cfg.Users.Create)
				r.Get("/new", cfg.Users.New)
				r.Get("/{id}/edit", cfg.Users.Edit)
				r.Post("/{id}", cfg.Users.Update)
				r.Get("/{id}/delete", cfg.Users.ConfirmDelete)
				r.Post("/{id}/delete", cfg.Users.Delete)
			})
		})
	})

	return r
}

// csrfFailure renders the rejection of a form post without a valid token.
func csrfFailure(render *Renderer, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reason := "unknown"
		if err := csrf.FailureReason(r); err != nil {
			reason = err.Error()
		}
		logger.WarnContext(r.Context(), "csrf rejected",
			slog.String("path", r.URL.Path),
			slog.String("reason", reason),
		)
		render.Error(w, r, http.StatusForbidden, "Your form has expired. Reload the page and try again.")
	})
}
