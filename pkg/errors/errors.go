package errors

import (
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrDatasetLoad ErrorCode = iota + 1000
	ErrEmptyInput
	ErrPersistence
)

// DatasetLoad signals the medication dataset could not be read or
// parsed. Fatal: the run aborts before any entity is created.
func DatasetLoad(path string, err error) *AppError {
	return &AppError{
		Code:    ErrDatasetLoad,
		Message: fmt.Sprintf("failed to load dataset %s", path),
		Err:     err,
	}
}

// EmptyInput signals a sampler was invoked on an empty candidate set.
// The fixed template pools are never empty, so hitting this means a
// caller bug, not bad data.
func EmptyInput(what string) *AppError {
	return &AppError{
		Code:    ErrEmptyInput,
		Message: fmt.Sprintf("cannot sample from empty %s", what),
	}
}

// Persistence signals the storage collaborator rejected a write. The
// seeding run aborts; partial data is left in place.
func Persistence(entity string, err error) *AppError {
	return &AppError{
		Code:    ErrPersistence,
		Message: fmt.Sprintf("failed to persist %s", entity),
		Err:     err,
	}
}
