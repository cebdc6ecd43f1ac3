package entity

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requires an actor
	// and the request is anonymous.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the actor is not the owner of the
	// resource being mutated.
	ErrForbidden = errors.New("operation not allowed")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a required field is empty after
	// trimming or otherwise malformed.
	ErrInvalidInput = errors.New("invalid input")
)
