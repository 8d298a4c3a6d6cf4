// Package password provides password hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost matches the 10-round work factor used for all stored hashes.
const cost = 10

// Hasher defines the interface for password hashing.
type Hasher interface {
	// Hash creates a salted hash from a plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash.
	Verify(plaintext, hash string) bool
}

type bcryptHasher struct{}

// NewBcryptHasher creates a bcrypt-backed Hasher.
func NewBcryptHasher() Hasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify never errors: mismatches and malformed hashes both report false.
func (bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
