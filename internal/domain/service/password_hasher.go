// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrCorruptCredential is returned by Check when the stored hash is not a
// well-formed hash at all. Callers must treat it exactly like a failed
// verification toward the client so the two cases stay indistinguishable
// externally; internally it is worth logging.
var ErrCorruptCredential = errors.New("stored credential is malformed")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// embedded in the output, so two calls with the same input differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A mismatch is
	// (false, nil); a malformed stored hash is (false, ErrCorruptCredential).
	Check(password, hash string) (bool, error)
}
