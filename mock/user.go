package mock

import (
	"context"

	"github.com/awalczyk/biascope"
)

var _ biascope.UserService = (*UserService)(nil)

// UserService is a mock implementation of biascope.UserService.
type UserService struct {
	CreateUserFn     func(ctx context.Context, user *biascope.User) error
	FindUserByNameFn func(ctx context.Context, username string) (*biascope.User, error)
}

func (s *UserService) CreateUser(ctx context.Context, user *biascope.User) error {
	return s.CreateUserFn(ctx, user)
}

func (s *UserService) FindUserByName(ctx context.Context, username string) (*biascope.User, error) {
	return s.FindUserByNameFn(ctx, username)
}

var _ biascope.PasswordHasher = (*PasswordHasher)(nil)

// PasswordHasher is a mock implementation of biascope.PasswordHasher.
type PasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	return h.HashFn(password)
}

func (h *PasswordHasher) Compare(hash, password string) error {
	return h.CompareFn(hash, password)
}
