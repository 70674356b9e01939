package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/heartmarshall/judgment-web/internal/config"
)

// CSRFFieldName is the hidden form field holding the CSRF token.
const CSRFFieldName = "csrf_token"

// CSRF returns middleware that rejects unsafe requests without a valid
// token. key must be 32 bytes. onFailure renders the rejection; nil keeps
// the library's plain 403. Without cfg.Secure requests are treated as
// plain HTTP so the Referer check does not demand TLS.
func CSRF(key []byte, cfg config.CSRFConfig, onFailure http.Handler) Middleware {
	opts := []csrf.Option{
		csrf.Secure(cfg.Secure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.CookieName("judgment_csrf"),
		csrf.FieldName(CSRFFieldName),
	}
	if origins := cfg.TrustedOriginList(); len(origins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(origins))
	}
	if onFailure != nil {
		opts = append(opts, csrf.ErrorHandler(onFailure))
	}
	protect := csrf.Protect(key, opts...)

	return func(next http.Handler) http.Handler {
		h := protect(next)
		if cfg.Secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
