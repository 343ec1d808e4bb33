package facility

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/utils/response"
)

type Controller struct {
	cfg *Config
}

func NewController(cfg *Config) *Controller {
	return &Controller{cfg: cfg}
}

// Info handles GET /api/v1/facility
func (c *Controller) Info(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Facility retrieved", c.cfg, nil)
}

// Courts handles GET /api/v1/facility/courts
func (c *Controller) Courts(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Courts retrieved", gin.H{
		"courts": c.cfg.Courts,
		"count":  len(c.cfg.Courts),
	}, nil)
}
