package biascope

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`

	// PasswordHash is never serialized.
	PasswordHash string `json:"-"`
}

// Validate returns an error if the user contains invalid fields.
func (u *User) Validate() error {
	if u.Username == "" {
		return Errorf(EINVALID, "username required")
	}
	if u.PasswordHash == "" {
		return Errorf(EINVALID, "password hash required")
	}
	return nil
}

// UserService represents a service for managing accounts.
type UserService interface {
	// CreateUser creates a new account.
	// Returns ECONFLICT if the username is already taken.
	CreateUser(ctx context.Context, user *User) error

	// FindUserByName retrieves an account by username.
	// Returns ENOTFOUND if the account does not exist.
	FindUserByName(ctx context.Context, username string) (*User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns EUNAUTHORIZED if they do not match.
	Compare(hash, password string) error
}
