// Package apperror holds the error kinds the HTTP layer knows how to translate.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports input that failed schema or uniqueness rules.
// Errors lists every failed rule, not only the first.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Errors)
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// BadRequestError reports a malformed request, such as a non-numeric id.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func Validation(message string, errs ...string) error {
	return &ValidationError{Message: message, Errors: errs}
}

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func BadRequest(message string) error {
	return &BadRequestError{Message: message}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsBadRequest reports whether err wraps a BadRequestError.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
