package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled signals that the user declined a required confirmation. It is
// not reported as an error: the command stops without side effects.
var ErrCancelled = errors.New("command cancelled")

// NoResourcesFoundError is returned when there is no resource of a kind to
// choose from. Callers may provision a new resource instead.
type NoResourcesFoundError struct {
	Kind Kind
}

func (e *NoResourcesFoundError) Error() string {
	return fmt.Sprintf("%s has no %s, but you can create one with the %q command", e.Kind.Owner(), e.Kind.Plural(), e.Kind.Command())
}

// NotFoundError is returned when an explicit ID or name matches nothing.
type NotFoundError struct {
	Kind     Kind
	IDOrName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Unable to find a %s with %q as the ID or name", e.Kind.Label(), e.IDOrName)
}

// ResolutionError is returned when a name matches more than one resource.
type ResolutionError struct {
	Kind Kind
	Name string
}

func (e *ResolutionError) Error() string {
	label := e.Kind.Label()
	return fmt.Sprintf("Unable to select a %s because more than one %s has the name %q", label, label, e.Name)
}

// StateError is returned when the context or a resource is in a state that
// makes the operation impossible.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// NewStateError creates a StateError with a formatted message.
func NewStateError(format string, args ...any) *StateError {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// DependencyError is returned when a requirement runs before the
// requirements it depends on. It is a declaration error, not a user error.
type DependencyError struct {
	Missing []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("requirement depends on unfulfilled requirements: %s", strings.Join(e.Missing, ", "))
}

// ValidationError is returned for invalid user input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FulfillmentError is returned when the data needed to offer choices is
// missing or unusable.
type FulfillmentError struct {
	Message string
}

func (e *FulfillmentError) Error() string { return e.Message }

// NewFulfillmentError creates a FulfillmentError with a formatted message.
func NewFulfillmentError(format string, args ...any) *FulfillmentError {
	return &FulfillmentError{Message: fmt.Sprintf(format, args...)}
}

// IsNoResourcesFound reports whether err is or wraps a NoResourcesFoundError.
func IsNoResourcesFound(err error) bool {
	var target *NoResourcesFoundError
	return errors.As(err, &target)
}
