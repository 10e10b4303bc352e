// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	"net/http"

	"soundem/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// ErrUnauthenticated covers every token failure: missing, malformed,
	// bad signature, expired, or a user that no longer exists. A single
	// message for all of them keeps the response from acting as an
	// oracle for which check failed.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid or missing authentication token.",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
	)

	ErrArtistNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTIST_NOT_FOUND",
		"Artist not found",
	)

	ErrAlbumNotFound = NewBaseError(
		http.StatusNotFound,
		"ALBUM_NOT_FOUND",
		"Album not found",
	)

	ErrSongNotFound = NewBaseError(
		http.StatusNotFound,
		"SONG_NOT_FOUND",
		"Song not found",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// Validation messages for the registration form, matching the wire
// contract: every violated field is reported together in one response.
const (
	MsgEmailRequired    = "Email is required."
	MsgPasswordRequired = "Password is required."
	MsgEmailInvalid     = "Email is invalid."
	MsgEmailTaken       = "Email is already taken."
)

// ValidationError carries the full set of per-field violations for a
// request. Checks are collected, not short-circuited, so a caller sees
// everything wrong with its input at once.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError ready to collect violations.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a violation for a field. Later additions for the same field
// overwrite earlier ones, mirroring how the registration form reports
// "taken" over "required".
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasViolations reports whether any field failed validation.
func (e *ValidationError) HasViolations() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "validation failed"
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error for errors.Is/As checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns internal detail for logs. It is never written to a response body.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
