package analytics

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupAnalyticsRoutes configures all analytics-related routes
func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.RequireAdmin(cfg))
	{
		analytics.GET("/summary", controller.Summary) // GET /api/v1/analytics/summary
	}
}
