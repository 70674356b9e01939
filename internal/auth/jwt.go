package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the "exp" claim of a backend bearer token without
// verifying its signature; the backend remains the authority on validity.
// ok is false when the token is not a JWT or carries no expiry.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// SessionExpiry returns the earlier of now+ttl and the token's own expiry.
func SessionExpiry(token string, now time.Time, ttl time.Duration) time.Time {
	expires := now.Add(ttl)
	if exp, ok := TokenExpiry(token); ok && exp.Before(expires) {
		return exp
	}
	return expires
}
