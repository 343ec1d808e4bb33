package facility

import (
	"github.com/gin-gonic/gin"
)

// SetupFacilityRoutes configures the facility document routes
func SetupFacilityRoutes(rg *gin.RouterGroup, controller *Controller) {
	facility := rg.Group("/facility")
	{
		facility.GET("", controller.Info)         // GET /api/v1/facility
		facility.GET("/courts", controller.Courts) // GET /api/v1/facility/courts
	}
}
