// Package apperrors defines the application error taxonomy. Services return
// these sentinels (optionally wrapped); the error middleware translates them
// to HTTP statuses.
package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Identifier errors
	ErrIdentifierExists  = errors.New("identifier already exists")
	ErrCorruptIdentifier = errors.New("stored identifier is corrupt")

	// Upload errors
	ErrUploadRejected = errors.New("upload rejected")

	// Store errors: surfaced to callers as a retryable failure class.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Referenced-entity errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrCounsellorNotFound = errors.New("counsellor not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrClassroomNotFound  = errors.New("classroom not found")
	ErrEnquiryNotFound    = errors.New("admission enquiry not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomError carries a message alongside a sentinel for errors.Is matching.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
