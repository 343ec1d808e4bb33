package waitlist

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Join handles POST /api/v1/waitlist
func (c *Controller) Join(ctx *gin.Context) {
	var req JoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	entry, err := c.service.Join(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Added to waitlist", entry, nil)
}

// List handles GET /api/v1/waitlist (admin). Optional court_id+date filters
// narrow the listing to one slot's queue.
func (c *Controller) List(ctx *gin.Context) {
	courtID := ctx.Query("court_id")
	date := ctx.Query("date")

	var (
		entries []Entry
		err     error
	)
	if courtID != "" && date != "" {
		entries, err = c.service.ListForSlot(ctx.Request.Context(), courtID, date)
	} else {
		entries, err = c.service.List(ctx.Request.Context())
	}
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to list waitlist", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Waitlist retrieved", gin.H{
		"entries": entries,
		"count":   len(entries),
	}, nil)
}

// Remove handles DELETE /api/v1/waitlist/:id (admin)
func (c *Controller) Remove(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid waitlist entry ID", nil, nil)
		return
	}

	if err := c.service.Remove(ctx.Request.Context(), id); err != nil {
		if IsNotFound(err) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Waitlist entry not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to remove waitlist entry", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Waitlist entry removed", nil, nil)
}
