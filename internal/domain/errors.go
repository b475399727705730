package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input to a constructor or mutation.
// It is always raised before any state change is applied.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports that the acting user lacks the role required
// for a privileged operation. The operation has zero side effects.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return e.Msg
}

func NewAuthorizationError(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Msg: fmt.Sprintf(format, args...)}
}

// StateError reports an operation attempted against a booking that is not
// in the required state, or against a vehicle that became unavailable.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return e.Msg
}

func NewStateError(format string, args ...any) *StateError {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}
