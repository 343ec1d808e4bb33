package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures all auth-related routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	auth := rg.Group("/auth")
	{
		auth.POST("/token", controller.Token) // POST /api/v1/auth/token
	}
}
