package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/rohitgsuresh/Baselineage/internal/errors"
	"github.com/rohitgsuresh/Baselineage/model"
)

// AnnotateRequest defines the structure for annotation requests.
type AnnotateRequest struct {
	Text string `json:"text"`
}

// ResolveRequest defines the structure for single-term lookups.
type ResolveRequest struct {
	Query string `json:"query"`
}

// CompareRequest defines the structure for comparison requests.
type CompareRequest struct {
	FeatureA string `json:"feature_a"`
	FeatureB string `json:"feature_b"`
}

// AnnotateHandler runs a full scan of the submitted text against the
// loaded dataset. The host re-invokes this on text changes and renders the
// returned spans as inline highlighting plus hover tooltips.
func (api *API) AnnotateHandler(c *gin.Context) {
	startTime := time.Now()

	var req AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.Annotate(req.Text)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeTextTooLarge, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeAnnotationFailed, "Annotation failed: "+err.Error())
		return
	}

	api.trackUsage(model.UsageEvent{
		Operation:    model.OperationAnnotate,
		TextLength:   len(req.Text),
		ResultCount:  result.Total,
		ResponseTime: time.Since(startTime),
	})

	c.JSON(http.StatusOK, result)
}

// ResolveHandler looks up a single search term: exact-ish match, "did you
// mean" suggestion, or not found.
func (api *API) ResolveHandler(c *gin.Context) {
	startTime := time.Now()

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.Resolve(req.Query)
	if err != nil {
		SendInternalError(c, "resolve", err)
		return
	}

	resultCount := 0
	if result.Kind != model.ResolverResultNone {
		resultCount = 1
	}
	api.trackUsage(model.UsageEvent{
		Operation:    model.OperationResolve,
		Query:        req.Query,
		ResultCount:  resultCount,
		ResponseTime: time.Since(startTime),
	})

	c.JSON(http.StatusOK, result)
}

// CompareHandler scores two features' adoption timelines against each other.
func (api *API) CompareHandler(c *gin.Context) {
	startTime := time.Now()

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateCompareRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := api.engine.Compare(req.FeatureA, req.FeatureB)
	if err != nil {
		if errors.Is(err, internalErrors.ErrFeatureNotFound) {
			var notFound *internalErrors.FeatureNotFoundError
			if errors.As(err, &notFound) {
				SendFeatureNotFoundError(c, notFound.FeatureName)
				return
			}
		}
		SendComparisonError(c, err)
		return
	}

	api.trackUsage(model.UsageEvent{
		Operation:    model.OperationCompare,
		ResultCount:  1,
		ResponseTime: time.Since(startTime),
	})

	c.JSON(http.StatusOK, result)
}

// trackUsage records an event asynchronously to avoid slowing down the
// response.
func (api *API) trackUsage(event model.UsageEvent) {
	go func() {
		if err := api.usage.TrackEvent(event); err != nil {
			log.Printf("Warning: Failed to track usage event: %v", err)
		}
	}()
}
