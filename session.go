package biascope

import (
	"context"
	"time"
)

// Session ties a browser cookie token to an authenticated user.
type Session struct {
	Token     string    `json:"-"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionService represents a service for managing login sessions.
type SessionService interface {
	// CreateSession issues a new session for a user.
	CreateSession(ctx context.Context, username string, ttl time.Duration) (*Session, error)

	// FindSessionByToken retrieves a live session.
	// Returns ENOTFOUND for unknown or expired tokens.
	FindSessionByToken(ctx context.Context, token string) (*Session, error)

	// DeleteSession invalidates a token. Deleting an unknown token is a no-op.
	DeleteSession(ctx context.Context, token string) error
}
