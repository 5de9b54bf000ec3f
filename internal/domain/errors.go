package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo functions when the requested row does not
// exist. The service translates it into a NotFoundError or a plain "no result"
// depending on the operation.
var ErrNotFound = errors.New("not found")

// ErrValidation is the sentinel every caller-input failure unwraps to.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by repo functions when a write violates a storage
// uniqueness constraint (trip name, registration email).
var ErrConflict = errors.New("conflict")

// ErrUnauthorized signals that the caller may not perform the request.
// Handlers map it to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// InputError reports that caller-supplied data broke a validation rule or a
// uniqueness/capacity constraint. Field names the offending input using the
// JSON field name so clients can map the message next to the right control.
type InputError struct {
	Field   string
	Message string
}

// NewInputError builds an InputError for field.
func NewInputError(field, message string) *InputError {
	return &InputError{Field: field, Message: message}
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that a referenced trip does not exist.
type NotFoundError struct {
	Message string
}

// TripNotFound builds the NotFoundError used for every trip lookup by id.
func TripNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Could not find trip with ID %d.", id)}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// RegistrationLimitExceededError is raised when a trip has no free seats left.
// It unwraps to ErrValidation so generic callers treat it as bad input, while
// errors.As lets the transport give it its own handling.
type RegistrationLimitExceededError struct {
	TripID        int64
	NumberOfSeats int
}

func (e *RegistrationLimitExceededError) Error() string {
	return fmt.Sprintf("Trip with ID %d has reached its limit of %d seats.", e.TripID, e.NumberOfSeats)
}

func (e *RegistrationLimitExceededError) Unwrap() error {
	return ErrValidation
}
