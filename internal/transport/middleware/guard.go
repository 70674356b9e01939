package middleware

import (
	"net/http"
	"net/url"

	"github.com/heartmarshall/judgment-web/internal/service/session"
)

// Landing pages used by the guards.
const (
	LoginPath   = "/login"
	DefaultPath = "/judgments"
)

// RequireAuth redirects anonymous requests to the login page. For GET and
// HEAD the requested path and query travel along as returnUrl.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()) == nil {
			http.Redirect(w, r, LoginURL(r), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin redirects anonymous requests like RequireAuth and signed-in
// non-admins to the judgments list.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil {
			http.Redirect(w, r, LoginURL(r), http.StatusSeeOther)
			return
		}
		if !sess.User.IsAdmin() {
			http.Redirect(w, r, DefaultPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginURL builds the login redirect for r.
func LoginURL(r *http.Request) string {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"returnUrl": {r.URL.RequestURI()}}.Encode()
}

// SafeReturnURL returns raw when it is a local path, else DefaultPath.
// Protocol-relative, backslash and control-character forms are refused.
func SafeReturnURL(raw string) string {
	if len(raw) == 0 || raw[0] != '/' {
		return DefaultPath
	}
	if len(raw) > 1 && (raw[1] == '/' || raw[1] == '\\') {
		return DefaultPath
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < 0x20 || raw[i] == 0x7f {
			return DefaultPath
		}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultPath
	}
	return raw
}
