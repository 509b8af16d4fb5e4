// Package error defines domain-specific errors for the Cluck & Track application.
package error

import "errors"

// Egg-collection record domain errors.
var (
	// ErrRecordNotFound is returned when an egg-collection record does not exist.
	ErrRecordNotFound = errors.New("egg collection record not found")

	// ErrNegativeCount is returned when a count field is negative.
	ErrNegativeCount = errors.New("egg counts cannot be negative")

	// ErrCountExceeded is returned when damaged+spoiled+sold exceeds the collected count.
	ErrCountExceeded = errors.New("damaged, spoiled and sold eggs cannot exceed the collected count")

	// ErrInvalidSoldAs is returned when the sale unit is not single or crate.
	ErrInvalidSoldAs = errors.New("sold_as must be: single or crate")

	// ErrInvalidPaymentStatus is returned when the payment status is not recognized.
	ErrInvalidPaymentStatus = errors.New("payment_status must be: paid, pending, or overdue")

	// ErrMissingCage is returned when a record references no cage.
	ErrMissingCage = errors.New("cage_id is required")

	// ErrNotesTooLong is returned when the notes field exceeds the allowed length.
	ErrNotesTooLong = errors.New("notes exceed the maximum allowed length")
)

// RecordErrorCode defines error codes for egg-collection record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeCount        RecordErrorCode = "REC-010001"
	ErrCodeCountExceeded        RecordErrorCode = "REC-010002"
	ErrCodeInvalidSoldAs        RecordErrorCode = "REC-010003"
	ErrCodeInvalidPaymentStatus RecordErrorCode = "REC-010004"
	ErrCodeMissingCage          RecordErrorCode = "REC-010005"
	ErrCodeNotesTooLong         RecordErrorCode = "REC-010006"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents an egg-collection record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
