// internal/common/apperror/apperror.go
// Error taxonomy shared by services and handlers

package apperror

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound covers both missing records and records the requester does not own.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when existence hiding does not apply.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation marks a malformed payload rejected before storage.
	ErrValidation = errors.New("validation failed")
	// ErrRateLimited is returned when a requester exceeds its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// StorageError wraps a failure of the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError unless it is nil or already
// classified as NotFound.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// Validation returns a validation error carrying msg.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// IsStorage reports whether err came from the persistence layer.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// RateLimitError reports when the requester may retry. It matches ErrRateLimited.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
