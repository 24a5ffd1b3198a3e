package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries one message per violated rule so the client can
// display all problems at once.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ErrorKind names the taxonomy bucket an error falls into, for metrics.
func ErrorKind(err error) string {
	var validationErr *ValidationError
	var duplicateErr *DuplicateResourceError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &duplicateErr):
		return "duplicate"
	case errors.As(err, &notFoundErr):
		return "not_found"
	default:
		return "internal"
	}
}

// DuplicateResourceError signals a unique-constraint violation, translated
// from the store's duplicate-key error.
type DuplicateResourceError struct {
	Message string
}

func (e *DuplicateResourceError) Error() string {
	return e.Message
}

// NotFoundError covers both a record that does not exist and one owned by a
// different user. The two cases are intentionally indistinguishable.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// InternalError wraps store or network failures that the client cannot fix.
type InternalError struct {
	Err error
}

func NewInternalError(err error) *InternalError {
	return &InternalError{Err: err}
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
