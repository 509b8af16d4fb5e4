// Package error defines domain-specific errors for the Cluck & Track application.
package error

import "errors"

// Flock (coop/cage/feed) domain errors.
var (
	// ErrCoopNotFound is returned when a coop does not exist.
	ErrCoopNotFound = errors.New("coop not found")

	// ErrCageNotFound is returned when a cage does not exist.
	ErrCageNotFound = errors.New("cage not found")

	// ErrCageNameTaken is returned when a cage with the same name already exists.
	ErrCageNameTaken = errors.New("a cage with this name already exists")

	// ErrFeedNotFound is returned when a feed type is not in the inventory.
	ErrFeedNotFound = errors.New("feed type not found")

	// ErrInsufficientFeedStock is returned when consuming more feed than is stocked.
	ErrInsufficientFeedStock = errors.New("insufficient feed stock")

	// ErrCapacityExceeded is returned when occupancy would exceed capacity.
	ErrCapacityExceeded = errors.New("occupancy exceeds capacity")
)

// FlockErrorCode defines error codes for flock errors.
// Format: FLK-XXYYYY where XX is category and YYYY is specific error.
type FlockErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCageNameTaken     FlockErrorCode = "FLK-010001"
	ErrCodeCapacityExceeded  FlockErrorCode = "FLK-010002"
	ErrCodeInsufficientStock FlockErrorCode = "FLK-010003"

	// Lookup errors (02XXXX)
	ErrCodeCoopNotFound FlockErrorCode = "FLK-020001"
	ErrCodeCageNotFound FlockErrorCode = "FLK-020002"
	ErrCodeFeedNotFound FlockErrorCode = "FLK-020003"

	// Internal errors (99XXXX)
	ErrCodeFlockInternalError FlockErrorCode = "FLK-990001"
)

// FlockError represents a flock error with code and message.
type FlockError struct {
	Code    FlockErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FlockError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FlockError) Unwrap() error {
	return e.Err
}

// NewFlockError creates a new FlockError with the given code and message.
func NewFlockError(code FlockErrorCode, message string, err error) *FlockError {
	return &FlockError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
