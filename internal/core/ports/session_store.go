package ports

import (
	"context"
	"time"
)

// SessionStore tracks customer sessions so stale ones can be swept out.
// Sessions are touched on every order interaction; a session with no activity
// inside the TTL window is considered abandoned.
type SessionStore interface {
	// Touch records activity for the session, creating it if needed.
	Touch(ctx context.Context, sessionID string, now time.Time) error

	// DeleteExpired removes every session whose last activity is older than
	// ttl, relative to now. Returns the number of sessions removed.
	DeleteExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error)
}
