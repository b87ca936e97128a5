package services

import (
	"errors"
	"fmt"
)

// The three failure classes the core surfaces. Handlers map them to status
// codes; services only wrap and propagate.

type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "validation: " + e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func storageWrap(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string { return "not found: " + e.Err.Error() }
func (e *NotFoundError) Unwrap() error { return e.Err }

func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Err: fmt.Errorf(format, args...)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
