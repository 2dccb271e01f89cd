package domain

import "errors"

// Sentinel errors raised by the domain and use cases. The API layer maps
// each to an HTTP status in internal/api/error_handler.go.
var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidName        = errors.New("name must be between 2 and 50 characters")
	ErrInvalidRole        = errors.New("role must be ADMIN or USER")
	ErrNoUpdateFields     = errors.New("at least one field must be provided for update")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyDeleted     = errors.New("user already deleted")
	ErrForbidden          = errors.New("forbidden")
)

// Token verification failures. The auth guard treats all three as 403 but
// they stay distinct for logging and tests.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)
