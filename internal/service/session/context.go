package session

import (
	"context"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

type ctxKey struct{}

// WithContext stores the resolved session in ctx. A nil session records
// that resolution finished with no signed-in user.
func WithContext(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithContext, or nil.
func FromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(ctxKey{}).(*domain.Session)
	return s
}

// MustFromContext returns the session for handlers mounted behind the
// session loader. It panics when the loader never ran.
func MustFromContext(ctx context.Context) *domain.Session {
	v := ctx.Value(ctxKey{})
	if v == nil {
		panic("session: MustFromContext called outside the session loader")
	}
	return v.(*domain.Session)
}
