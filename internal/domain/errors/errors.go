package errors

import (
	"net/http"

	"lodging/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors. The message is identical for unknown
	// usernames and wrong passwords.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Customer-related errors
	ErrDuplicateUser = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USER",
		"Username or email already registered",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	// Lodging-related errors
	ErrLodgingNotFound = NewBaseError(
		http.StatusNotFound,
		"LODGING_NOT_FOUND",
		"Lodging not found",
		"",
	)

	// Reservation-related errors
	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVATION_NOT_FOUND",
		"Reservation not found",
		"",
	)

	ErrInvalidDateFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_FORMAT",
		"Dates must be ISO 8601 date-times",
		"",
	)

	ErrInvalidStayWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STAY_WINDOW",
		"Start date must be before end date",
		"",
	)

	ErrReservationConflict = NewBaseError(
		http.StatusConflict,
		"RESERVATION_CONFLICT",
		"Lodging is already reserved for the requested dates",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

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

// Unwrap exposes the driver error.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
