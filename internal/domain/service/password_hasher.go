// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// CheckDummy performs a comparison of the same cost as Check against a fixed
	// digest. It always returns false and exists so that unknown accounts take
	// as long to reject as wrong passwords.
	CheckDummy(password string) bool
}

// PasswordPolicy validates a candidate password before it is hashed.
type PasswordPolicy interface {
	// Validate returns domainerrors.ErrPasswordPolicy (with details) on violation.
	Validate(password string) error
}
