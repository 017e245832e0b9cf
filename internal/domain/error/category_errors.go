// Package error defines domain-specific errors for the application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category with the same name already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrInvalidCategoryKind is returned when the category kind is invalid.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrInvalidClassification is returned when the category classification is invalid.
	ErrInvalidClassification = errors.New("invalid category classification")

	// ErrCategoryInUse is returned when deleting a category still referenced by
	// transactions or budgets.
	ErrCategoryInUse = errors.New("category is referenced by transactions or budgets")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryAlreadyExists CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidClassification CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
