// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. Hashing the
	// same input twice yields different digests.
	Hash(password string) (string, error)

	// Check reports whether the plaintext produced the digest. A malformed
	// digest never matches.
	Check(password, hash string) bool
}
