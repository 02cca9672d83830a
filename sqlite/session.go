package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/awalczyk/biascope"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ biascope.SessionService = (*SessionService)(nil)

// SessionService implements biascope.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession issues a new session for a user.
func (s *SessionService) CreateSession(ctx context.Context, username string, ttl time.Duration) (*biascope.Session, error) {
	if username == "" {
		return nil, biascope.Errorf(biascope.EINVALID, "username required")
	}

	now := time.Now().UTC()
	session := &biascope.Session{
		Token:     uuid.New().String(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, username, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.Token, session.Username,
		session.CreatedAt.Format(time.RFC3339), session.ExpiresAt.Format(time.RFC3339))

	if err != nil {
		return nil, err
	}

	return session, nil
}

// FindSessionByToken retrieves a live session. Expired sessions are
// deleted on sight and reported as ENOTFOUND.
func (s *SessionService) FindSessionByToken(ctx context.Context, token string) (*biascope.Session, error) {
	var session biascope.Session
	var createdAt, expiresAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT token, username, created_at, expires_at
		FROM sessions
		WHERE token = ?
	`, token).Scan(&session.Token, &session.Username, &createdAt, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, biascope.Errorf(biascope.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	if session.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if session.ExpiresAt, err = parseRFC3339(expiresAt, "expires_at"); err != nil {
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.DeleteSession(ctx, token)
		return nil, biascope.Errorf(biascope.ENOTFOUND, "session expired")
	}

	return &session, nil
}

// DeleteSession invalidates a token. Deleting an unknown token is a no-op.
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}
