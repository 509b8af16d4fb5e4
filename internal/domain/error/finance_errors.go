// Package error defines domain-specific errors for the Cluck & Track application.
package error

import "errors"

// Finance domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrRevenueNotFound is returned when a revenue does not exist.
	ErrRevenueNotFound = errors.New("revenue not found")

	// ErrNonPositiveAmount is returned when an amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrMissingDescription is returned when a description is not provided.
	ErrMissingDescription = errors.New("description is required")

	// ErrSuggestionUnavailable is returned when the category suggestion service fails.
	ErrSuggestionUnavailable = errors.New("category suggestion is unavailable")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveAmount  FinanceErrorCode = "FIN-010001"
	ErrCodeMissingDescription FinanceErrorCode = "FIN-010002"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound FinanceErrorCode = "FIN-020001"
	ErrCodeRevenueNotFound FinanceErrorCode = "FIN-020002"

	// External service errors (03XXXX)
	ErrCodeSuggestionUnavailable FinanceErrorCode = "FIN-030001"

	// Internal errors (99XXXX)
	ErrCodeFinanceInternalError FinanceErrorCode = "FIN-990001"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
