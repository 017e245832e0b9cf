// Package error defines domain-specific errors for the application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when registering with an email that is taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when an access token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no access token is provided.
	ErrMissingToken = errors.New("missing access token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound           AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUT-010002"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUT-010003"
	ErrCodeInvalidToken           AuthErrorCode = "AUT-010004"
	ErrCodeMissingToken           AuthErrorCode = "AUT-010005"
	ErrCodeMissingAuthFields      AuthErrorCode = "AUT-010006"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
