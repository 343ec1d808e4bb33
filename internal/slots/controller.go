package slots

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

// DaySchedule handles GET /api/v1/slots?court_id=&date=
func (c *Controller) DaySchedule(ctx *gin.Context) {
	courtID := ctx.Query("court_id")
	date := ctx.Query("date")
	if courtID == "" || date == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "court_id and date query parameters are required", nil, nil)
		return
	}

	schedule, err := c.service.DaySchedule(ctx.Request.Context(), date, courtID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	// An empty slot list is a valid schedule: nothing fits the window
	response.RespondJSON(ctx, "success", http.StatusOK, "Day schedule retrieved", schedule, nil)
}
