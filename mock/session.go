package mock

import (
	"context"
	"time"

	"github.com/awalczyk/biascope"
)

var _ biascope.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of biascope.SessionService.
type SessionService struct {
	CreateSessionFn      func(ctx context.Context, username string, ttl time.Duration) (*biascope.Session, error)
	FindSessionByTokenFn func(ctx context.Context, token string) (*biascope.Session, error)
	DeleteSessionFn      func(ctx context.Context, token string) error
}

func (s *SessionService) CreateSession(ctx context.Context, username string, ttl time.Duration) (*biascope.Session, error) {
	return s.CreateSessionFn(ctx, username, ttl)
}

func (s *SessionService) FindSessionByToken(ctx context.Context, token string) (*biascope.Session, error) {
	return s.FindSessionByTokenFn(ctx, token)
}

func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.DeleteSessionFn(ctx, token)
}
