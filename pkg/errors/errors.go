package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a named thing, such as a form field, does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a rejected form submission
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingElement indicates the page is missing an element the controller needs.
	// It is a setup error, not a user error.
	ErrMissingElement = errors.New("missing element")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// MissingElementError reports the selector that could not be resolved
func MissingElementError(selector string) error {
	return fmt.Errorf("element %s: %w", selector, ErrMissingElement)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
