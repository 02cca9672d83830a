// Package bcrypt provides the password hashing implementation.
package bcrypt

import (
	"github.com/awalczyk/biascope"
	"golang.org/x/crypto/bcrypt"
)

// Ensure Hasher implements biascope.PasswordHasher at compile time.
var _ biascope.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost factor.
// Defaults to bcrypt.DefaultCost if not specified.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// NewHasher creates a new Hasher.
func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash derives a storable hash from a plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", biascope.Errorf(biascope.EINVALID, "password required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks a plaintext password against a stored hash.
func (h *Hasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return biascope.Errorf(biascope.EUNAUTHORIZED, "invalid credentials")
	}
	return nil
}
