package errors

import "errors"

// This package defines a centralized set of sentinel errors for the client.
// Services return these recognizable errors without coupling themselves to
// HTTP status codes; callers branch with errors.Is().

var (
	// ErrNotFound signifies that a requested resource does not exist on the
	// backend. Mapped from a 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that a request payload failed validation,
	// either locally before sending or on the backend (400).
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current
	// state of a resource on the backend (409).
	ErrConflict = errors.New("resource conflict")

	// ErrCanceled signifies that the user declined a confirmation gate.
	// It is deliberately distinct from system failures: callers treat
	// "user declined" silently, with no error toast and no retry.
	ErrCanceled = errors.New("canceled by user")

	// ErrBackend signifies an unexpected failure reported by the backend
	// or a transport-level failure reaching it.
	ErrBackend = errors.New("backend error")
)
