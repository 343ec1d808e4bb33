package reservations

import (
	"errors"
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

// Create handles POST /api/v1/reservations
func (c *Controller) Create(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	created, err := c.service.Commit(ctx.Request.Context(), req)
	if err != nil {
		c.respondCommitError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation confirmed", gin.H{
		"reservations": created,
		"count":        len(created),
	}, nil)
}

// respondCommitError maps the commit failure taxonomy onto HTTP statuses,
// always naming the specific cause
func (c *Controller) respondCommitError(ctx *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, validationErr.Message, nil, gin.H{
			"field": validationErr.Field,
		})
		return
	}

	var couponErr *CouponError
	if errors.As(err, &couponErr) {
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, couponErr.Reason, nil, gin.H{
			"field": "coupon_code",
		})
		return
	}

	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		response.RespondJSON(ctx, "error", http.StatusConflict, conflictErr.Error(), nil, gin.H{
			"date": conflictErr.Date,
		})
		return
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable,
			"Reservation store unavailable, please retry", nil, storeErr.Error())
		return
	}

	response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create reservation", nil, err.Error())
}

// List handles GET /api/v1/reservations (admin)
func (c *Controller) List(ctx *gin.Context) {
	query := ListQuery{
		Date:    ctx.Query("date"),
		CourtID: ctx.Query("court_id"),
	}

	rows, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to list reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations retrieved", gin.H{
		"reservations": rows,
		"count":        len(rows),
	}, nil)
}

// Get handles GET /api/v1/reservations/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	res, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Reservation not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to load reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation retrieved", res, nil)
}

// Delete handles DELETE /api/v1/reservations/:id (admin)
func (c *Controller) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		if IsNotFound(err) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Reservation not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to delete reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation deleted", nil, nil)
}

// DeleteAll handles DELETE /api/v1/reservations (admin)
func (c *Controller) DeleteAll(ctx *gin.Context) {
	if err := c.service.DeleteAll(ctx.Request.Context()); err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to clear reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "All reservations deleted", nil, nil)
}

// Import handles POST /api/v1/reservations/import (admin). The posted
// collection replaces the stored one wholesale.
func (c *Controller) Import(ctx *gin.Context) {
	var rows []Reservation
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.service.ImportAll(ctx.Request.Context(), rows); err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to import reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations imported", gin.H{
		"count": len(rows),
	}, nil)
}

// Export handles GET /api/v1/reservations/export (admin)
func (c *Controller) Export(ctx *gin.Context) {
	csv, err := c.service.ExportCSV(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Failed to export reservations", nil, err.Error())
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	ctx.Data(http.StatusOK, "text/csv", csv)
}
