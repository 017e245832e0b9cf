// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/google/uuid"

// TokenService issues and validates access tokens.
type TokenService interface {
	// Generate issues a signed access token for the user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks the token signature and expiry and returns the user ID.
	Validate(token string) (uuid.UUID, error)
}
