// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService handles password hashing and verification.
type PasswordService interface {
	// Hash produces a one-way hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	Compare(hash, password string) error
}
