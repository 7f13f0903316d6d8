package errors

import (
	"fmt"
	"strings"

	"todo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind            // Taxonomy kind, drives the HTTP status
	HTTPCode() int         // HTTP status code
	ErrorCode() string     // Business error code
	Message() string       // User-friendly error message
	Details() string       // Detailed error information, server-side only
	PublicDetails() string // Details written by this service for the caller, if any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	public    bool
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewBadRequest creates a BadRequest error with its own code, e.g. "INVALID_ID".
func NewBadRequest(errorCode, reason string) *BaseError {
	return NewBaseError(KindBadRequest, errorCode, "BadRequest: "+reason, "")
}

// NewNotFound creates a NotFound error for the given resource kind, e.g. "Todo".
func NewNotFound(resourceKind string) *BaseError {
	code := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(resourceKind), " ", "_")) + "_NOT_FOUND"

	return NewBaseError(KindNotFound, code, fmt.Sprintf("%s Not Found", resourceKind), "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Unwrap exposes the underlying cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches errors of the same kind and code, so copies made by
// WithDetails or WithCause still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// Kind returns the taxonomy kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return StatusCode(e.kind)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// PublicDetails returns the details only when they were set with WithDetails.
// Text taken from a cause is never public.
func (e *BaseError) PublicDetails() string {
	if !e.public {
		return ""
	}

	return e.details
}

// WithDetails adds detailed error information that may be shown to the caller.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		public:    true,
		cause:     e.cause,
	}
}

// WithCause attaches the underlying error; its text becomes the server-side details.
func (e *BaseError) WithCause(cause error) *BaseError {
	if cause == nil {
		return e
	}

	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   cause.Error(),
		cause:     cause,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrNoAuthorizationHeader = NewBaseError(
		KindNoAuthorizationHeader,
		string(KindNoAuthorizationHeader),
		"No Authorization Header",
		"",
	)

	ErrInvalidAuthorizationHeader = NewBaseError(
		KindInvalidAuthorizationHeader,
		string(KindInvalidAuthorizationHeader),
		"Authorization header is not in valid format",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindInvalidToken,
		string(KindInvalidToken),
		"Invalid JWT Token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		KindTokenExpired,
		string(KindTokenExpired),
		"Token Expired",
		"",
	)

	ErrClaimsShapeMismatch = NewBaseError(
		KindClaimsShapeMismatch,
		string(KindClaimsShapeMismatch),
		"Error while Deserializing JWT",
		"",
	)

	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		string(KindUnauthorized),
		"Unauthorized",
		"",
	)

	// Credential and token production errors
	ErrHashingFailure = NewBaseError(
		KindHashingFailure,
		string(KindHashingFailure),
		"Error while hashing credential",
		"",
	)

	ErrSigningFailure = NewBaseError(
		KindSigningFailure,
		string(KindSigningFailure),
		"Error while signing JWT",
		"",
	)

	// Resource errors
	ErrUserNotFound      = NewNotFound("User")
	ErrTodoNotFound      = NewNotFound("Todo")
	ErrUserAlreadyExists = NewBadRequest("USER_ALREADY_EXISTS", "User Already Exists")
	ErrInvalidID         = NewBadRequest("INVALID_ID", "invalid id")
	ErrValidationFailed  = NewBadRequest("VALIDATION_FAILED", "validation failed")

	// General errors
	ErrInternal = NewBaseError(
		KindInternal,
		string(KindInternal),
		"Internal Server Error",
		"",
	)
)

// KindOf returns the taxonomy kind carried by err, or KindInternal for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
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

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the taxonomy kind
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return StatusCode(KindInternal)
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternal.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PublicDetails is always empty; database failures stay server-side.
func (e *DatabaseExecuteError) PublicDetails() string {
	return ""
}
