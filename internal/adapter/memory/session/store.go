// Package session is an in-process session store. Sessions do not survive
// a restart; use it for development and tests.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

type entry struct {
	values    map[string][]byte
	expiresAt time.Time
}

// Store keeps sessions in a map guarded by a mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// New creates an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]*entry)}
}

// Get returns the value stored under key for the session.
func (s *Store) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok || !e.expiresAt.After(time.Now()) {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	v, ok := e.values[key]
	if !ok {
		return nil, fmt.Errorf("session %s key %s: %w", sessionID, key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Put writes entries and moves the session expiry to expiresAt.
func (s *Store) Put(_ context.Context, sessionID string, entries map[string][]byte, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		e = &entry{values: make(map[string][]byte, len(entries))}
		s.sessions[sessionID] = e
	}
	for k, v := range entries {
		e.values[k] = append([]byte(nil), v...)
	}
	e.expiresAt = expiresAt
	return nil
}

// Delete removes every key of the session.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// PurgeExpired removes sessions whose expiry is at or before now.
func (s *Store) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.sessions {
		if !e.expiresAt.After(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }
