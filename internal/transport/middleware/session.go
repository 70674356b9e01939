package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
	"github.com/heartmarshall/judgment-web/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionCookie describes the cookie that carries the session id.
type SessionCookie struct {
	Name   string
	Secure bool
}

// ID returns the session id sent by the browser, or "".
func (c SessionCookie) ID(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Set issues the session cookie.
func (c SessionCookie) Set(w http.ResponseWriter, sessionID string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie in the browser.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoadSession resolves the session cookie once per request and stores the
// result with session.WithContext, even when nobody is signed in. For a
// signed-in user the id, role and bearer token are also put in the context.
// A stale cookie is cleared. A store failure is logged and the request
// continues anonymously.
func LoadSession(resolver sessionResolver, cookie SessionCookie, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sid := cookie.ID(r)

			var sess *domain.Session
			if sid != "" {
				resolved, err := resolver.Resolve(ctx, sid)
				switch {
				case err == nil:
					sess = resolved
				case errors.Is(err, domain.ErrUnauthorized):
					cookie.Clear(w)
				default:
					logger.ErrorContext(ctx, "session resolve failed", slog.String("error", err.Error()))
				}
			}

			ctx = session.WithContext(ctx, sess)
			if sess != nil {
				ctx = ctxutil.WithUserID(ctx, sess.User.ID)
				ctx = ctxutil.WithUserRole(ctx, sess.User.Role.String())
				ctx = ctxutil.WithToken(ctx, sess.Token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
