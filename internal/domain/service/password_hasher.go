// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The output
	// embeds algorithm tag, work factor, and salt, so the parameters can
	// change in the future while old hashes stay verifiable. Hashing an
	// empty password is a programmer error and fails.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. It returns
	// false for any mismatch, malformed hash, or unknown algorithm tag;
	// it never returns an error. The digest comparison is constant time.
	Check(password, hash string) bool
}
