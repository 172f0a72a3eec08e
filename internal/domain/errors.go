package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors of the rental search service.
var (
	// ErrInvalidRequest indicates malformed or out-of-range input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCityNotFound indicates the city ID is not in the directory.
	ErrCityNotFound = errors.New("city not found")

	// ErrStoreNotFound indicates the store ID is not in the selected city.
	ErrStoreNotFound = errors.New("store not found")

	// ErrDirectoryUnavailable indicates the city/store directory could not be read.
	ErrDirectoryUnavailable = errors.New("directory unavailable")
)

// DirectoryError wraps a failure of a directory source.
type DirectoryError struct {
	// Source is the name of the failing directory
	Source string

	// Err is the underlying error
	Err error

	// Retryable marks transient failures (transport errors, 5xx)
	Retryable bool
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory %s: %v", e.Source, e.Err)
}

func (e *DirectoryError) Unwrap() []error {
	return []error{ErrDirectoryUnavailable, e.Err}
}

// NewDirectoryError creates a non-retryable directory error.
func NewDirectoryError(source string, err error) *DirectoryError {
	return &DirectoryError{Source: source, Err: err}
}

// NewRetryableDirectoryError creates a directory error worth retrying.
func NewRetryableDirectoryError(source string, err error) *DirectoryError {
	return &DirectoryError{Source: source, Err: err, Retryable: true}
}

// WrapInvalidRequest formats a message wrapped around ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err is a missing city or store.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCityNotFound) || errors.Is(err, ErrStoreNotFound)
}

// IsRetryable reports whether err is a retryable directory failure.
func IsRetryable(err error) bool {
	var de *DirectoryError
	return errors.As(err, &de) && de.Retryable
}
