package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation (e.g., a non-image attachment, an empty turn).
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource. The single-flight
	// guard returns this when a turn is started while another one is still
	// streaming, and a language change returns it once the user has engaged.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrConfiguration signifies that the application is missing configuration
	// it cannot run without, such as the AI provider credential. It is
	// surfaced once at startup; no turn can proceed past it.
	ErrConfiguration = errors.New("configuration error")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
