package pricing

import (
	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes configures the quote routes
func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	pricing := rg.Group("/pricing")
	{
		pricing.POST("/quote", controller.Quote) // POST /api/v1/pricing/quote
	}
}
