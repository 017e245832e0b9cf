// Package error defines domain-specific errors for the application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same category and recurrence.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and recurrence")

	// ErrInvalidBudgetAmount is returned when the budget ceiling is not positive.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetRecurrence is returned when the recurrence is not weekly or monthly.
	ErrInvalidBudgetRecurrence = errors.New("invalid budget recurrence")

	// ErrBudgetCategoryNotFound is returned when the category for a budget is not found.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound          BudgetErrorCode = "BGT-010001"
	ErrCodeBudgetAlreadyExists     BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount     BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetRecurrence BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryNotFound  BudgetErrorCode = "BGT-010005"
	ErrCodeUnauthorizedBudget      BudgetErrorCode = "BGT-010006"
	ErrCodeMissingBudgetFields     BudgetErrorCode = "BGT-010007"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
