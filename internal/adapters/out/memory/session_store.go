// Package memory provides in-process adapter implementations backed by maps.
package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStore tracks customer session activity in memory. Sessions carry no
// durable state of their own (orders live in the database), so process-local
// tracking is enough for sweeping abandoned sessions.
type SessionStore struct {
	mu           sync.RWMutex
	lastActivity map[string]time.Time
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		lastActivity: make(map[string]time.Time),
	}
}

// Touch records activity for the session, creating it if needed.
func (s *SessionStore) Touch(_ context.Context, sessionID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity[sessionID] = now
	return nil
}

// DeleteExpired removes every session whose last activity is older than ttl,
// relative to now. Returns the number of sessions removed.
func (s *SessionStore) DeleteExpired(_ context.Context, ttl time.Duration, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := now.Add(-ttl)
	removed := 0
	for sessionID, last := range s.lastActivity {
		if last.Before(deadline) {
			delete(s.lastActivity, sessionID)
			removed++
		}
	}

	return removed, nil
}

// Len reports the number of tracked sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lastActivity)
}
