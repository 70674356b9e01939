// Package session is the bbolt-backed durable session store. Each session
// is a nested bucket under the root "sessions" bucket holding one value
// per key plus its expiry.
package session

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var rootBucket = []byte("sessions")

// expiresKey holds the session expiry as big-endian unix nanoseconds.
// Keys starting with "_" are reserved.
var expiresKey = []byte("_expires_at")

// Store persists sessions in a single bbolt file.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("bolt: create dir %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rootBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create root bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key for the session.
func (s *Store) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(rootBucket).Bucket([]byte(sessionID))
		if b == nil || isExpired(b, time.Now()) {
			return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return fmt.Errorf("session %s key %s: %w", sessionID, key, domain.ErrNotFound)
		}
		// Values are only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put writes entries and moves the session expiry to expiresAt in one
// transaction.
func (s *Store) Put(_ context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error {
	for k := range entries {
		if k == "" || strings.HasPrefix(k, "_") {
			return fmt.Errorf("bolt: invalid key %q: %w", k, domain.ErrValidation)
		}
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(rootBucket).CreateBucketIfNotExists([]byte(sessionID))
		if err != nil {
			return err
		}
		for k, v := range entries {
			if err := b.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return b.Put(expiresKey, encodeTime(expiresAt))
	})
	if err != nil {
		return fmt.Errorf("bolt: put session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes the session bucket and all its keys.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket(rootBucket).DeleteBucket([]byte(sessionID))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("bolt: delete session %s: %w", sessionID, err)
	}
	return nil
}

// PurgeExpired removes sessions whose expiry is at or before now.
func (s *Store) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	var n int
	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(rootBucket)

		var expired [][]byte
		c := root.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if v != nil {
				continue
			}
			if b := root.Bucket(k); b != nil && isExpired(b, now) {
				expired = append(expired, append([]byte(nil), k...))
			}
		}

		for _, k := range expired {
			if err := root.DeleteBucket(k); err != nil {
				return err
			}
		}
		n = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bolt: purge expired: %w", err)
	}
	return n, nil
}

// Ping checks that the database is open and readable.
func (s *Store) Ping(context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(rootBucket) == nil {
			return errors.New("bolt: root bucket missing")
		}
		return nil
	})
}

func isExpired(b *bolt.Bucket, now time.Time) bool {
	raw := b.Get(expiresKey)
	if len(raw) != 8 {
		return true
	}
	return !decodeTime(raw).After(now)
}

func encodeTime(t time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))
	return buf
}

func decodeTime(b []byte) time.Time {
	return time.Unix(0, int64(binary.BigEndian.Uint64(b)))
}
