// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Analysis input errors.
var (
	// ErrEmptyMessages indicates the analyser was given no messages.
	ErrEmptyMessages = errors.New("message list is empty")

	// ErrWindowTooSmall indicates the moving average window is not bigger than one.
	ErrWindowTooSmall = errors.New("window must be bigger than one")

	// ErrNegativeTime indicates a chat export record carries a time before stream start.
	ErrNegativeTime = errors.New("message time is negative")
)

// Intensity scale validation errors.
var (
	// ErrMismatchedListSizes indicates the level, constant and color lists differ in length.
	ErrMismatchedListSizes = errors.New("intensity lists differ in size")

	// ErrConstantsNotAscending indicates the intensity constants are not in ascending order.
	ErrConstantsNotAscending = errors.New("intensity constants not in ascending order")

	// ErrConstantsNotUnique indicates the intensity constants contain duplicates.
	ErrConstantsNotUnique = errors.New("intensity constants not unique")
)

// Context source errors.
var (
	// ErrMalformedContext indicates a context record is missing its reaction key.
	ErrMalformedContext = errors.New("malformed context record")

	// ErrDuplicateContext indicates two context records share the same reaction key.
	ErrDuplicateContext = errors.New("duplicate context record")

	// ErrAllContextsCorrupt indicates autofix skipped every context record.
	ErrAllContextsCorrupt = errors.New("all context records corrupt")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
