// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Dataset errors.
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyDataset  = errors.New("dataset is empty")
	ErrRaggedRow     = errors.New("row length does not match column count")

	// Preparation errors.
	ErrInvalidBounds       = errors.New("invalid word count bounds")
	ErrInvalidSampleCount  = errors.New("samples per class must be positive")
	ErrInsufficientSamples = errors.New("insufficient samples in class")
	ErrInvalidSplit        = errors.New("invalid train/test split")

	// Input errors.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrInvalidIdentifier = errors.New("invalid SQL identifier")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
