package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/awalczyk/biascope"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ biascope.UserService = (*UserService)(nil)

// UserService implements biascope.UserService using SQLite.
type UserService struct {
	db *DB
}

// NewUserService creates a new UserService.
func NewUserService(db *DB) *UserService {
	return &UserService{db: db}
}

// CreateUser creates a new account.
func (s *UserService) CreateUser(ctx context.Context, user *biascope.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Username, user.PasswordHash, user.CreatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
		return biascope.Errorf(biascope.ECONFLICT, "username %q already taken", user.Username)
	}

	return err
}

// FindUserByName retrieves an account by username.
func (s *UserService) FindUserByName(ctx context.Context, username string) (*biascope.User, error) {
	var user biascope.User
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, biascope.Errorf(biascope.ENOTFOUND, "user not found")
	}
	if err != nil {
		return nil, err
	}

	user.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &user, nil
}
