package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
	"github.com/heartmarshall/judgment-web/internal/transport/middleware"
	"github.com/heartmarshall/judgment-web/pkg/ctxutil"
)

//go:generate moq -out session_service_mock_test.go -pkg web . sessionService
//go:generate moq -out judgment_service_mock_test.go -pkg web . judgmentService
//go:generate moq -out user_service_mock_test.go -pkg web . userService
//go:generate moq -out session_resolver_mock_test.go -pkg web . SessionResolver

const testCookieName = "sid"

var (
	adminUser = domain.User{ID: "admin-1", Name: "Ada Admin", Email: "ada@example.com", Role: domain.RoleAdmin}
	plainUser = domain.User{ID: "user-1", Name: "Bob Clerk", Email: "bob@example.com", Role: domain.RoleUser}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCookie() middleware.SessionCookie {
	return middleware.SessionCookie{Name: testCookieName}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer(discardLogger(), false)
	require.NoError(t, err)
	return rd
}

// noLogout is a session service for handlers that must not sign anyone out.
func noLogout() *sessionServiceMock {
	return &sessionServiceMock{
		LogoutFunc: func(ctx context.Context, sessionID string) error { return nil },
	}
}

func newTestResponder(t *testing.T, sessions sessionEnder) *Responder {
	t.Helper()
	return NewResponder(newTestRenderer(t), sessions, testCookie(), discardLogger())
}

// asUser puts a signed-in session on r the way middleware.LoadSession does.
func asUser(r *http.Request, u domain.User) *http.Request {
	sess := &domain.Session{ID: "sess-" + u.ID, Token: "token-" + u.ID, User: u, ExpiresAt: time.Now().Add(time.Hour)}
	ctx := session.WithContext(r.Context(), sess)
	ctx = ctxutil.WithUserID(ctx, u.ID)
	ctx = ctxutil.WithUserRole(ctx, u.Role.String())
	ctx = ctxutil.WithToken(ctx, sess.Token)
	r = r.WithContext(ctx)
	r.AddCookie(&http.Cookie{Name: testCookieName, Value: sess.ID})
	return r
}

func anonymous(r *http.Request) *http.Request {
	return r.WithContext(session.WithContext(r.Context(), nil))
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// flashOf decodes the toasts a response queued for the next page.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) []Toast {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flashCookieName {
			r.AddCookie(ck)
		}
	}
	return readToasts(r)
}

func cookieOf(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
