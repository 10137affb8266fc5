package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeFeatureNotFound  ErrorCode = "FEATURE_NOT_FOUND"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeTextTooLarge     ErrorCode = "TEXT_TOO_LARGE"

	// Server Error Codes (5xx)
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrorCodeAnnotationFailed ErrorCode = "ANNOTATION_FAILED"
	ErrorCodeComparisonFailed ErrorCode = "COMPARISON_FAILED"
	ErrorCodeReloadFailed     ErrorCode = "DATASET_RELOAD_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, APIErrorResponse(code, message, details...))
}

// SendValidationError sends a validation error with structured details
func SendValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendFeatureNotFoundError sends a standardized feature not found error
func SendFeatureNotFoundError(c *gin.Context, featureName string) {
	SendError(c, http.StatusNotFound, ErrorCodeFeatureNotFound,
		"Feature '"+featureName+"' not found")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendComparisonError sends a standardized comparison failure error
func SendComparisonError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeComparisonFailed,
		"Comparison failed: "+err.Error())
}

// SendReloadError sends a standardized dataset reload failure error
func SendReloadError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeReloadFailed,
		"Dataset reload failed: "+err.Error())
}
