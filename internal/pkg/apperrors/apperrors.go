package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed or out-of-range input. Nothing is
// committed when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError signals that a referenced record does not exist. Callers
// must not confuse it with a validation failure.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError for the named entity ("Round", "Hole", "User").
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
