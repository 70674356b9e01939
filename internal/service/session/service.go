// Package session owns the browser session: the backend bearer token and
// the signed-in user, persisted in a durable key/value store under an
// opaque session id.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Keys stored per session. Both are written on sign-in and removed
// together on logout.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// sessionStore defines the durable storage the session service needs.
type sessionStore interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// tokenSealer encrypts the bearer token at rest.
type tokenSealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// authClient defines the backend auth endpoints used by the session service.
type authClient interface {
	Login(ctx context.Context, cred domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	UpdateProfile(ctx context.Context, changes domain.ProfileChanges) (json.RawMessage, error)
}

// Service implements session lifecycle operations.
type Service struct {
	log    *slog.Logger
	store  sessionStore
	sealer tokenSealer
	auth   authClient
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
}

// NewService creates a new session service instance.
func NewService(
	logger *slog.Logger,
	store sessionStore,
	sealer tokenSealer,
	auth authClient,
	ttl time.Duration,
) *Service {
	return &Service{
		log:    logger.With("service", "session"),
		store:  store,
		sealer: sealer,
		auth:   auth,
		ttl:    ttl,
		now:    time.Now,
		newID:  newSessionID,
	}
}
