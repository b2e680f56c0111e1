// Package errors defines the application error taxonomy. Every failure that
// can reach a client is expressed as an AppError so the HTTP boundary can map
// it to a status code and an `{errors: ...}` body without inspecting internals.
package errors

import (
	"net/http"

	"accounts/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types.
var (
	// ErrValidationFailed covers malformed or empty input. Field-level detail
	// travels in a FieldErrors value instead when it is available.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
	)

	// ErrUsernameTaken is returned when registration hits the storage-level
	// uniqueness constraint on username.
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username is already registered",
	)

	// ErrInvalidCredentials is shared by the "no such user" and "wrong
	// password" login failures. The two must stay indistinguishable to the
	// caller so usernames cannot be enumerated.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"username or password is wrong",
	)

	// ErrUnauthorized is returned by the token gate for a missing or unknown
	// X-API-TOKEN header.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrPasswordHashFailed signals a hashing failure, which is an internal
	// fault rather than a client mistake.
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
	)

	// ErrStorageUnavailable signals that the repository's backing store could
	// not serve the request. Retryable by the caller.
	ErrStorageUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_UNAVAILABLE",
		"storage is temporarily unavailable",
	)
)

// FieldErrors is a validation failure carrying per-field messages. It
// implements AppError so the boundary renders it as a 400 with
// `{errors: {field: message, ...}}`.
type FieldErrors struct {
	fields map[string]string
}

// NewFieldErrors creates a FieldErrors from a field→message map.
func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{fields: fields}
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	return "request validation failed"
}

// HTTPCode returns the HTTP status code.
func (e *FieldErrors) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *FieldErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-facing error message.
func (e *FieldErrors) Message() string {
	return e.Error()
}

// Fields returns the per-field messages.
func (e *FieldErrors) Fields() map[string]string {
	return e.fields
}

// DatabaseExecuteError wraps an unexpected database failure while keeping the
// AppError contract, so callers still see a plain 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}
