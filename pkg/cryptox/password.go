// Package cryptox provides password hashing for the blog service.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds. DefaultCost suits production; tests run at MinCost so
// suites stay fast.
const (
	MinCost     = bcrypt.MinCost
	DefaultCost = 12
)

// ErrMismatch is returned by Verify when the password does not match the
// stored hash, or when the stored hash is corrupt. Callers must treat both
// cases identically so a broken hash never reveals anything.
var ErrMismatch = errors.New("cryptox: password does not match")

// PasswordHasher hashes and verifies passwords with bcrypt. The zero value
// is not usable; construct it with NewPasswordHasher so the cost is bounded.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost factor.
// Out-of-range costs are clamped to the bcrypt-supported range.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return PasswordHasher{cost: cost}
}

// Cost reports the configured cost factor.
func (h PasswordHasher) Cost() int { return h.cost }

// Hash returns a salted bcrypt hash of password. bcrypt generates a fresh
// random salt per call, so hashing the same password twice yields different
// strings that both verify.
func (h PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares a plaintext password against a stored bcrypt hash.
// Any failure, including a malformed stored hash, reports ErrMismatch.
func (h PasswordHasher) Verify(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
