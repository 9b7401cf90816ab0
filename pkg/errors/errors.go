// Package errors defines the typed errors used across gofer.
package errors

import (
	"fmt"
)

// Error types
const (
	// ErrAuthenticationUnavailable is returned when every credential source in a chain came up empty
	ErrAuthenticationUnavailable = "authentication_unavailable"

	// ErrIndirectionFailed is returned when a secret reference could not be dereferenced
	ErrIndirectionFailed = "indirection_failed"

	// ErrCredentialSourceNotFound is returned when a resolved credential path does not exist on disk
	ErrCredentialSourceNotFound = "credential_source_not_found"

	// ErrNotFound is returned when a remote resource does not exist
	ErrNotFound = "not_found"

	// ErrVendorAPI is returned when a vendor API reports a failure
	ErrVendorAPI = "vendor_api"

	// ErrValidation is returned when a request is rejected before any network call
	ErrValidation = "validation"

	// ErrUnexpected is returned when no more specific type applies
	ErrUnexpected = "unexpected"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewAuthenticationUnavailableError creates a new authentication unavailable error
func NewAuthenticationUnavailableError(message string, cause error) *Error {
	return NewError(ErrAuthenticationUnavailable, message, cause)
}

// NewIndirectionFailedError creates a new indirection failed error
func NewIndirectionFailedError(message string, cause error) *Error {
	return NewError(ErrIndirectionFailed, message, cause)
}

// NewCredentialSourceNotFoundError creates a new credential source not found error
func NewCredentialSourceNotFoundError(message string, cause error) *Error {
	return NewError(ErrCredentialSourceNotFound, message, cause)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, cause error) *Error {
	return NewError(ErrNotFound, message, cause)
}

// NewVendorAPIError creates a new vendor API error
func NewVendorAPIError(message string, cause error) *Error {
	return NewError(ErrVendorAPI, message, cause)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *Error {
	return NewError(ErrValidation, message, cause)
}

// NewUnexpectedError creates a new unexpected error
func NewUnexpectedError(message string, cause error) *Error {
	return NewError(ErrUnexpected, message, cause)
}

// IsAuthenticationUnavailable checks if the error is an authentication unavailable error
func IsAuthenticationUnavailable(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrAuthenticationUnavailable
}

// IsIndirectionFailed checks if the error is an indirection failed error
func IsIndirectionFailed(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrIndirectionFailed
}

// IsCredentialSourceNotFound checks if the error is a credential source not found error
func IsCredentialSourceNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrCredentialSourceNotFound
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrNotFound
}

// IsVendorAPI checks if the error is a vendor API error
func IsVendorAPI(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrVendorAPI
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrValidation
}

// IsUnexpected checks if the error is an unexpected error
func IsUnexpected(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ErrUnexpected
}
