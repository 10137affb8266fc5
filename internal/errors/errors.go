package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrFeatureNotFound is returned when a named feature is not in the dataset
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrMissingBrowserSupport is returned when a feature lacks a support
	// entry for a tracked browser during comparison scoring
	ErrMissingBrowserSupport = errors.New("missing browser support entry")

	// ErrDatasetNotLoaded is returned when an operation needs a dataset
	// before one has been loaded
	ErrDatasetNotLoaded = errors.New("dataset not loaded")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// FeatureNotFoundError represents a feature not found error with context
type FeatureNotFoundError struct {
	FeatureName string
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("feature named '%s' not found in dataset", e.FeatureName)
}

func (e *FeatureNotFoundError) Is(target error) bool {
	return target == ErrFeatureNotFound
}

// NewFeatureNotFoundError creates a new FeatureNotFoundError
func NewFeatureNotFoundError(featureName string) *FeatureNotFoundError {
	return &FeatureNotFoundError{FeatureName: featureName}
}

// MissingBrowserSupportError represents a missing support entry with context.
// Comparison scoring fails fast with this error rather than letting a
// malformed record propagate silently into the sum.
type MissingBrowserSupportError struct {
	FeatureName string
	Browser     string
}

func (e *MissingBrowserSupportError) Error() string {
	return fmt.Sprintf("feature '%s' has no support entry for browser '%s'", e.FeatureName, e.Browser)
}

func (e *MissingBrowserSupportError) Is(target error) bool {
	return target == ErrMissingBrowserSupport
}

// NewMissingBrowserSupportError creates a new MissingBrowserSupportError
func NewMissingBrowserSupportError(featureName, browser string) *MissingBrowserSupportError {
	return &MissingBrowserSupportError{FeatureName: featureName, Browser: browser}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
