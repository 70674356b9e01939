// Package sessiontest holds the behavioural test suite every session store
// backend must pass.
package sessiontest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Store is the key/value contract shared by the session store backends.
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
	Ping(ctx context.Context) error
}

// Run exercises newStore against the shared contract. newStore must
// return an empty store; it may be called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("PutThenGet", func(t *testing.T) {
		s := newStore(t)
		sid := uuid.NewString()

		err := s.Put(ctx, sid, map[string][]byte{
			"token": []byte("sealed"),
			"user":  []byte(`{"id":"1"}`),
		}, time.Now().Add(time.Hour))
		require.NoError(t, err)

		tok, err := s.Get(ctx, sid, "token")
		require.NoError(t, err)
		assert.Equal(t, []byte("sealed"), tok)

		user, err := s.Get(ctx, sid, "user")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"1"}`, string(user))
	})

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		sid := uuid.NewString()

		_, err := s.Get(ctx, sid, "token")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, s.Put(ctx, sid, map[string][]byte{"user": []byte("u")}, time.Now().Add(time.Hour)))
		_, err = s.Get(ctx, sid, "token")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("PutOverwritesAndExtends", func(t *testing.T) {
		s := newStore(t)
		sid := uuid.NewString()

		require.NoError(t, s.Put(ctx, sid, map[string][]byte{"user": []byte("old"), "token": []byte("t")}, time.Now().Add(time.Minute)))
		require.NoError(t, s.Put(ctx, sid, map[string][]byte{"user": []byte("new")}, time.Now().Add(time.Hour)))

		user, err := s.Get(ctx, sid, "user")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), user)

		tok, err := s.Get(ctx, sid, "token")
		require.NoError(t, err, "keys not named in Put are kept")
		assert.Equal(t, []byte("t"), tok)

		n, err := s.PurgeExpired(ctx, time.Now().Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 0, n, "expiry applies to the whole session")
	})

	t.Run("ExpiredIsNotFound", func(t *testing.T) {
		s := newStore(t)
		sid := uuid.NewString()

		require.NoError(t, s.Put(ctx, sid, map[string][]byte{"token": []byte("t")}, time.Now().Add(-time.Second)))

		_, err := s.Get(ctx, sid, "token")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("DeleteClearsAllKeys", func(t *testing.T) {
		s := newStore(t)
		sid := uuid.NewString()

		require.NoError(t, s.Put(ctx, sid, map[string][]byte{"token": []byte("t"), "user": []byte("u")}, time.Now().Add(time.Hour)))
		require.NoError(t, s.Delete(ctx, sid))

		for _, key := range []string{"token", "user"} {
			_, err := s.Get(ctx, sid, key)
			assert.ErrorIs(t, err, domain.ErrNotFound, key)
		}
	})

	t.Run("DeleteMissingIsNoop", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, uuid.NewString()))
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		s := newStore(t)
		a, b := uuid.NewString(), uuid.NewString()

		require.NoError(t, s.Put(ctx, a, map[string][]byte{"token": []byte("a")}, time.Now().Add(time.Hour)))
		require.NoError(t, s.Put(ctx, b, map[string][]byte{"token": []byte("b")}, time.Now().Add(time.Hour)))
		require.NoError(t, s.Delete(ctx, a))

		tok, err := s.Get(ctx, b, "token")
		require.NoError(t, err)
		assert.Equal(t, []byte("b"), tok)
	})

	t.Run("PurgeExpired", func(t *testing.T) {
		s := newStore(t)
		now := time.Now()
		live, dead1, dead2 := uuid.NewString(), uuid.NewString(), uuid.NewString()

		require.NoError(t, s.Put(ctx, live, map[string][]byte{"token": []byte("l")}, now.Add(time.Hour)))
		require.NoError(t, s.Put(ctx, dead1, map[string][]byte{"token": []byte("d"), "user": []byte("u")}, now.Add(-time.Hour)))
		require.NoError(t, s.Put(ctx, dead2, map[string][]byte{"token": []byte("d")}, now.Add(-time.Minute)))

		n, err := s.PurgeExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = s.Get(ctx, live, "token")
		assert.NoError(t, err)
	})

	t.Run("Ping", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Ping(ctx))
	})
}
