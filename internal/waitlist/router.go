package waitlist

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupWaitlistRoutes configures all waitlist-related routes
func SetupWaitlistRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	waitlist := rg.Group("/waitlist")
	{
		waitlist.POST("", controller.Join) // POST /api/v1/waitlist

		admin := waitlist.Group("")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.GET("", controller.List)          // GET    /api/v1/waitlist?court_id=&date=
			admin.DELETE("/:id", controller.Remove) // DELETE /api/v1/waitlist/:id
		}
	}
}
