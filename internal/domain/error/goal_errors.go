// Package error defines domain-specific errors for the application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found in the system.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContributionAmount is returned when a contribution amount is not positive.
	ErrInvalidContributionAmount = errors.New("invalid contribution amount")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to savings goal")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound              GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalName           GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount       GoalErrorCode = "GOL-010003"
	ErrCodeInvalidContributionAmount GoalErrorCode = "GOL-010004"
	ErrCodeUnauthorizedGoalAccess    GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields         GoalErrorCode = "GOL-010006"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
