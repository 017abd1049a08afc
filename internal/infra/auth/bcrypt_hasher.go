// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"lodging/config"
	"lodging/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return newBcryptHasher(cost)
}

func newBcryptHasher(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
