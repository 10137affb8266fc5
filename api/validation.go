// Package api provides the HTTP interface to the annotation engine.
package api

import (
	"strings"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateFeatureName validates a feature name parameter
func ValidateFeatureName(featureName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if featureName == "" {
		result.AddError("featureName", "Feature name is required")
		return result
	}

	if strings.TrimSpace(featureName) != featureName {
		result.AddError("featureName", "Feature name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateCompareRequest validates a comparison request body.
// Both operands are required and must differ.
func ValidateCompareRequest(req *CompareRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.FeatureA == "" {
		result.AddError("feature_a", "First feature name is required")
	}
	if req.FeatureB == "" {
		result.AddError("feature_b", "Second feature name is required")
	}
	if req.FeatureA != "" && strings.EqualFold(req.FeatureA, req.FeatureB) {
		result.AddError("feature_b", "Cannot compare a feature with itself")
	}

	return result
}
