// Package session implements the durable session store using PostgreSQL.
// Every key of a session is one row of session_entries; all rows of a
// session share its expiry.
package session

import (
	"context"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/judgment-web/internal/adapter/postgres"
)

const table = "session_entries"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the value stored under key for a live session.
// Returns domain.ErrNotFound if the key is missing or the session expired.
func (r *Repo) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From(table).
		Where(sq.Eq{"session_id": sessionID, "key": key}).
		Where(sq.Gt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return value, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Put upserts entries and moves the expiry of every row of the session to
// expiresAt, in one transaction.
func (r *Repo) Put(ctx context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	insert := psql.
		Insert(table).
		Columns("session_id", "key", "value", "expires_at").
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now()")
	for _, k := range keys {
		insert = insert.Values(sessionID, k, entries[k], expiresAt)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		if len(keys) > 0 {
			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build upsert query: %w", err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return postgres.MapError(err, "session", sessionID)
			}
		}

		query, args, err := psql.
			Update(table).
			Set("expires_at", expiresAt).
			Where(sq.Eq{"session_id": sessionID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build expiry query: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "session", sessionID)
		}
		return nil
	})
}

// Delete removes every row of the session. Deleting a missing session is
// not an error.
func (r *Repo) Delete(ctx context.Context, sessionID string) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"session_id": sessionID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	return nil
}

// PurgeExpired deletes sessions whose expiry is at or before now and
// returns how many sessions were removed.
func (r *Repo) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	del, args, err := psql.
		Delete(table).
		Where(sq.LtOrEq{"expires_at": now}).
		Suffix("RETURNING session_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge query: %w", err)
	}

	query := "WITH purged AS (" + del + ") SELECT count(DISTINCT session_id) FROM purged"

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return n, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
