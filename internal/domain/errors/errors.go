package errors

import (
	"fmt"
	"net/http"

	"huntlog/internal/errors"
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
	return e.message
}

// Is matches any BaseError carrying the same business code, so derived copies
// (WithDetails, WithMessage) still satisfy errors.Is against the predefined value.
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

// WithMessage returns a copy with a caller-specific user message.
func (e *BaseError) WithMessage(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_FAILED",
		"Sign in to continue",
		"",
	)

	ErrOAuthStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_MISMATCH",
		"Login request expired, please try again",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Login with the identity provider failed",
		"",
	)

	// Authorization
	ErrInsufficientTier = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_TIER",
		"You are not allowed to do that",
		"",
	)

	// Encounters
	ErrSlotTaken = NewBaseError(
		http.StatusConflict,
		"SLOT_TAKEN",
		"Island is already in use",
		"",
	)

	ErrEncounterNotFound = NewBaseError(
		http.StatusNotFound,
		"ENCOUNTER_NOT_FOUND",
		"Encounter not found",
		"",
	)

	// Hunts
	ErrHuntNotFound = NewBaseError(
		http.StatusNotFound,
		"HUNT_NOT_FOUND",
		"Hunt not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"The hunt cannot move to that status",
		"",
	)

	ErrDelegateNotFound = NewBaseError(
		http.StatusNotFound,
		"DELEGATE_NOT_FOUND",
		"Delegate not found",
		"",
	)

	// Validation
	ErrInvalidPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYLOAD",
		"Request payload is invalid",
		"",
	)

	// Dependencies. Neither reaches a client: the resolver demotes on provider
	// failures and the gateway swallows relay failures.
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"Identity provider unavailable",
		"",
	)

	ErrRelayUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"RELAY_UNAVAILABLE",
		"Broadcast relay unavailable",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// SlotTaken builds the user-facing conflict for a specific island.
func SlotTaken(slot int) *BaseError {
	return ErrSlotTaken.WithMessage("island %d is already in use", slot)
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

// Unwrap exposes the driver error for logging.
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
