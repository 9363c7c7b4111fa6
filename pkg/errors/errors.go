package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common application errors
var (
	ErrDuplicateRecord = NewDuplicateRecordError("persona", "this person already exists")
	ErrNotFound        = NewNotFoundError("persona", "person not found")
	ErrInternal        = NewInternalError("An internal error occurred", nil)
)

// ValidationError represents a validation failure carrying one message per
// failed rule, in the order the rules were evaluated.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a new validation error
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{
		Messages: messages,
	}
}

// Error implements the error interface. Messages are joined one per line.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// DuplicateRecordError signals that an equal record is already stored
type DuplicateRecordError struct {
	Resource string
	Message  string
}

// NewDuplicateRecordError creates a new duplicate record error
func NewDuplicateRecordError(resource, message string) *DuplicateRecordError {
	return &DuplicateRecordError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *DuplicateRecordError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *DuplicateRecordError) HTTPStatus() int {
	return http.StatusConflict
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// InternalError represents an unexpected failure with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser is implemented by errors that map to an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is or wraps a *DuplicateRecordError.
func IsDuplicate(err error) bool {
	var de *DuplicateRecordError
	return errors.As(err, &de)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Messages returns the field messages of a validation error, or the error text
// as a single message for any other error.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return []string{err.Error()}
}

// StatusCode returns the HTTP status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var s HTTPStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
