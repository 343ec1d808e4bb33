package reservations

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupReservationRoutes configures all reservation-related routes
func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	reservations := rg.Group("/reservations")
	{
		// Public booking flow
		reservations.POST("", controller.Create) // POST /api/v1/reservations
		reservations.GET("/:id", controller.Get) // GET  /api/v1/reservations/:id

		// Admin operations
		admin := reservations.Group("")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.GET("", controller.List)             // GET    /api/v1/reservations?date=&court_id=
			admin.GET("/export", controller.Export)    // GET    /api/v1/reservations/export
			admin.POST("/import", controller.Import)   // POST   /api/v1/reservations/import
			admin.DELETE("/:id", controller.Delete)    // DELETE /api/v1/reservations/:id
			admin.DELETE("", controller.DeleteAll)     // DELETE /api/v1/reservations
		}
	}
}
