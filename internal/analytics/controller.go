package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Summary handles GET /api/v1/analytics/summary (admin)
func (c *Controller) Summary(ctx *gin.Context) {
	summary, err := c.service.GetSummary(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to build analytics summary", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Analytics summary retrieved", summary, nil)
}
