package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/rohitgsuresh/Baselineage/internal/errors"
	"github.com/rohitgsuresh/Baselineage/services"
)

// Request bodies above this size are rejected outright; the annotate text
// cap is enforced separately by the engine.
const maxRequestBodySize = 4 << 20 // 4 MiB

// API holds the services the handlers dispatch to.
type API struct {
	engine services.AnnotationService
	usage  services.UsageTracker
}

// SetupRoutes configures all API routes on the given router.
func SetupRoutes(router *gin.Engine, engine services.AnnotationService, usage services.UsageTracker) {
	api := &API{engine: engine, usage: usage}

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	router.GET("/health", api.HealthHandler)

	group := router.Group("/api")
	{
		group.POST("/annotate", api.AnnotateHandler)
		group.POST("/resolve", api.ResolveHandler)
		group.POST("/compare", api.CompareHandler)
		group.GET("/features", api.ListFeaturesHandler)
		group.GET("/features/:featureName", api.GetFeatureHandler)
		group.POST("/dataset/reload", api.ReloadDatasetHandler)
		group.GET("/analytics/summary", api.AnalyticsSummaryHandler)
	}
}

// HealthHandler reports liveness and the size of the loaded dataset.
func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"feature_count": len(api.engine.Features()),
	})
}

// ListFeaturesHandler returns the full loaded dataset.
func (api *API) ListFeaturesHandler(c *gin.Context) {
	features := api.engine.Features()
	c.JSON(http.StatusOK, gin.H{
		"features": features,
		"total":    len(features),
	})
}

// GetFeatureHandler returns a single feature by display name.
func (api *API) GetFeatureHandler(c *gin.Context) {
	featureName := c.Param("featureName")

	if result := ValidateFeatureName(featureName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	feature, err := api.engine.GetFeature(featureName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrFeatureNotFound) {
			SendFeatureNotFoundError(c, featureName)
			return
		}
		SendInternalError(c, "get feature", err)
		return
	}

	c.JSON(http.StatusOK, feature)
}

// ReloadDatasetHandler re-parses the dataset source file and swaps the
// in-memory dataset.
func (api *API) ReloadDatasetHandler(c *gin.Context) {
	if err := api.engine.Reload(); err != nil {
		SendReloadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "reloaded",
		"feature_count": len(api.engine.Features()),
	})
}

// AnalyticsSummaryHandler returns aggregated usage statistics.
func (api *API) AnalyticsSummaryHandler(c *gin.Context) {
	summary, err := api.usage.Summary()
	if err != nil {
		SendInternalError(c, "analytics summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
