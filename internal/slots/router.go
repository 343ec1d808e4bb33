package slots

import (
	"github.com/gin-gonic/gin"
)

// SetupSlotRoutes configures the schedule routes
func SetupSlotRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/slots", controller.DaySchedule) // GET /api/v1/slots?court_id=&date=
}
