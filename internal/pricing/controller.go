package pricing

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turfbook/internal/facility"
	"turfbook/internal/shared/utils/response"
)

// QuoteRequest asks for the price of a slot before booking it
type QuoteRequest struct {
	CourtID    string `json:"court_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Start      string `json:"start" binding:"required,datetime=15:04"`
	CouponCode string `json:"coupon_code"`
}

// QuoteResponse carries the priced outcome, including a coupon rejection
type QuoteResponse struct {
	BasePrice int    `json:"base_price"`
	Amount    int    `json:"amount"`
	Discount  int    `json:"discount"`
	Code      string `json:"code,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type Controller struct {
	cfg *Config
}

// Config bundles the controller's dependencies
type Config struct {
	Facility *facility.Config
	Now      func() time.Time
}

func NewController(cfg *Config) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{cfg: cfg}
}

// Quote handles POST /api/v1/pricing/quote. Coupon rejections are part of the
// successful response body, not an HTTP error.
func (c *Controller) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	court, ok := c.cfg.Facility.CourtByID(req.CourtID)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unknown court", nil, gin.H{"court_id": req.CourtID})
		return
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Start, c.cfg.Facility.Location)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date or start time", nil, nil)
		return
	}

	base := BasePrice(court, start, c.cfg.Facility.PeakHours)
	today := c.cfg.Now().In(c.cfg.Facility.Location).Format("2006-01-02")
	quote := ApplyCoupon(req.CouponCode, base, c.cfg.Facility.Coupons, today)

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed", QuoteResponse{
		BasePrice: base,
		Amount:    quote.Amount,
		Discount:  quote.Discount,
		Code:      quote.Code,
		Reason:    quote.Reason,
	}, nil)
}
