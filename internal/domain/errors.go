package domain

import "errors"

// Sentinel errors shared across services. Callers classify wrapped errors
// with errors.Is and map them to HTTP status codes at the handler layer.
var (
	// ErrValidation marks client-supplied input that failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a lookup that matched no document.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a database read or write failure. Public endpoints
	// must not leak the underlying cause to the caller.
	ErrStorage = errors.New("storage error")

	// ErrUnauthorized marks failed credential or token checks.
	ErrUnauthorized = errors.New("unauthorized")
)
