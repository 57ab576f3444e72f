// Package errors provides centralized error definitions and error handling
// utilities for mailadm. It defines the semantic error kinds produced by the
// admin panel, error constructors with context wrapping, and classification
// helpers used at the orchestration boundary.
//
// The package provides four semantic error types:
//   - ValidationError: local input validation failed, no request was sent
//   - TransportError: the request never completed (network/connection failure)
//   - ServerError: the service answered with a non-success response
//   - NotFoundError: the target record no longer exists on the service
//
// Creating errors:
//
//	err := errors.NewValidationError("name", "must not be empty")
//	err := errors.NewTransportError("list accounts", cause)
//	err := errors.NewServerError("create account", http.StatusConflict, "duplicate name")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNotFound) { ... }
//
//	var serverErr *errors.ServerError
//	if errors.As(err, &serverErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
//	if errors.IsUserFacing(err) { ... }
//
// Every error produced here is safe to surface as a notice; none of them is
// allowed to escape the UI boundary as a crash.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates that the target record no longer exists.
	ErrNotFound = New("record not found")
	// ErrUnauthorized indicates a missing or rejected session token.
	ErrUnauthorized = New("not authorized")
	// ErrSessionExpired indicates the session token was superseded by
	// another login.
	ErrSessionExpired = New("session expired")
	// ErrConfirmationDeclined indicates the operator declined a
	// destructive-action confirmation.
	ErrConfirmationDeclined = New("confirmation declined")
	// ErrMutationInFlight indicates a submit was attempted while a previous
	// mutation had not settled yet.
	ErrMutationInFlight = New("mutation already in flight")
)

// PanelError is the interface implemented by all mailadm error types.
// It extends the standard error interface with classification methods
// used by the notification layer.
type PanelError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// IsRetryable returns true if the error is transient and the same
	// operation may succeed if the operator submits it again.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to the operator.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) IsRetryable() bool  { return e.retryable }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// ValidationError indicates local input validation failed before any request
// was sent. The transport never sees these.
//
// Example:
//
//	err := errors.NewValidationError("name", "must not be empty")
//	fmt.Println(err) // "validation failed [field=name]: must not be empty"
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			userFacing: true,
		},
		Field: field,
	}
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed [field=%s]: %s", e.Field, e.message)
	}
	return fmt.Sprintf("validation failed: %s", e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TransportError indicates the request never completed: connection refused,
// timeout, interrupted response. These are transient from the client's point
// of view, so they are classified retryable: the operator may submit the
// same operation again.
type TransportError struct {
	baseError
	Op string
}

// NewTransportError creates a TransportError for the named operation.
func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{
		baseError: baseError{
			message:    "request failed",
			cause:      cause,
			retryable:  true,
			userFacing: true,
		},
		Op: op,
	}
}

// Error returns the formatted error message.
func (e *TransportError) Error() string {
	prefix := "transport error"
	if e.Op != "" {
		prefix = fmt.Sprintf("transport error [op=%s]", e.Op)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *TransportError) Is(target error) bool {
	if _, ok := target.(*TransportError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ServerError indicates the service answered with a non-success response:
// a rejection, a conflict, a permission failure. The request reached the
// server, so the mutation may or may not have been applied there; the local
// store is never touched on this path.
type ServerError struct {
	baseError
	Op         string
	StatusCode int
}

// NewServerError creates a ServerError for the named operation.
func NewServerError(op string, statusCode int, message string) *ServerError {
	if message == "" {
		message = "request rejected"
	}
	return &ServerError{
		baseError: baseError{
			message:    message,
			userFacing: true,
		},
		Op:         op,
		StatusCode: statusCode,
	}
}

// WithCause attaches an underlying error.
func (e *ServerError) WithCause(cause error) *ServerError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ServerError) Error() string {
	prefix := "server error"
	if e.Op != "" {
		prefix = fmt.Sprintf("server error [op=%s, status=%d]", e.Op, e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ServerError) Is(target error) bool {
	if _, ok := target.(*ServerError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError indicates an operation targeted a record id that no longer
// exists on the service.
type NotFoundError struct {
	baseError
	Resource string
	ID       int
}

// NewNotFoundError creates a NotFoundError for the given resource and id.
func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    "not found",
			cause:      ErrNotFound,
			userFacing: true,
		},
		Resource: resource,
		ID:       id,
	}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IsRetryable returns true if the error is transient and the operation may
// succeed when submitted again. Returns false for plain errors.
func IsRetryable(err error) bool {
	var pe PanelError
	if As(err, &pe) {
		return pe.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to the
// operator. Returns false for plain errors, which should be logged instead.
func IsUserFacing(err error) bool {
	var pe PanelError
	if As(err, &pe) {
		return pe.IsUserFacing()
	}
	return false
}

// IsValidation returns true if the error is a local validation failure,
// meaning no request was ever sent.
func IsValidation(err error) bool {
	var ve *ValidationError
	return As(err, &ve)
}
