package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/transport/middleware"
)

type sessionEnder interface {
	Logout(ctx context.Context, sessionID string) error
}

// Responder renders pages and maps service errors to responses for every
// handler.
type Responder struct {
	render   *Renderer
	sessions sessionEnder
	cookie   middleware.SessionCookie
	log      *slog.Logger
}

// NewResponder creates a Responder.
func NewResponder(render *Renderer, sessions sessionEnder, cookie middleware.SessionCookie, logger *slog.Logger) *Responder {
	return &Responder{render: render, sessions: sessions, cookie: cookie, log: logger.With("component", "responder")}
}

// Fail answers a failed page load or action that has no form to
// re-render: 404 for a missing record, sign-out for a rejected token, and
// the error page otherwise.
func (rs *Responder) Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, context.Canceled):
		rs.log.DebugContext(r.Context(), "request abandoned", slog.String("path", r.URL.Path))
	case errors.Is(err, domain.ErrNotFound):
		rs.render.NotFound(w, r)
	case errors.Is(err, domain.ErrUnauthorized):
		rs.SignOut(w, r)
	case errors.Is(err, domain.ErrForbidden):
		rs.render.Error(w, r, http.StatusForbidden, domain.ErrorMessage(err, "You do not have permission to do that"))
	default:
		logFailure(r.Context(), rs.log, "request failed", err)
		rs.render.Error(w, r, failureStatus(err), domain.ErrorMessage(err, fallback))
	}
}

// SignOut drops the session after the backend rejected its token and
// sends the browser to the login page.
func (rs *Responder) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := rs.sessions.Logout(r.Context(), rs.cookie.ID(r)); err != nil {
		rs.log.ErrorContext(r.Context(), "drop session failed", slog.String("error", err.Error()))
	}
	rs.cookie.Clear(w)
	rs.render.Redirect(w, r, middleware.LoginURL(r), errorToast("Your session has expired", "Please sign in again."))
}

// failureStatus picks the HTTP status for a failed submission.
func failureStatus(err error) int {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// logFailure logs backend and internal failures. Validation errors are
// the user's to fix and are not logged.
func logFailure(ctx context.Context, log *slog.Logger, msg string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		return
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Kind != domain.ErrorKindServer && apiErr.Kind != domain.ErrorKindTransport {
		log.InfoContext(ctx, msg, slog.String("error", err.Error()), slog.Int("status", apiErr.Status))
		return
	}
	log.ErrorContext(ctx, msg, slog.String("error", err.Error()))
}
