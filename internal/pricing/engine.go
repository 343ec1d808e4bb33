package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"turfbook/internal/facility"
)

// Quote is the outcome of applying a coupon to an amount. A rejection is a
// user-facing validation outcome carried in Reason, never a hard error.
type Quote struct {
	Amount   int    `json:"amount"`
	Discount int    `json:"discount"`
	Code     string `json:"code,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Rejected reports whether the coupon was refused
func (q Quote) Rejected() bool {
	return q.Reason != ""
}

// BasePrice computes the price of a slot starting at the given time. The peak
// multiplier applies iff the start hour falls in [peak.Start, peak.End);
// the result is rounded to the nearest whole currency unit.
func BasePrice(court facility.Court, start time.Time, peak facility.PeakHours) int {
	multiplier := 1.0
	hour := start.Hour()
	if hour >= peak.Start && hour < peak.End {
		multiplier = peak.Multiplier
	}
	return int(math.Round(float64(court.BasePrice) * multiplier))
}

// ApplyCoupon resolves a coupon code against an amount. today is an ISO date;
// a coupon whose expiry is strictly before it is refused. Lookup is
// case-insensitive. An empty code or empty catalog passes the amount through
// unchanged. Pure function of its inputs.
func ApplyCoupon(code string, amount int, coupons []facility.Coupon, today string) Quote {
	if code == "" || len(coupons) == 0 {
		return Quote{Amount: amount}
	}

	var coupon *facility.Coupon
	for i := range coupons {
		if strings.EqualFold(coupons[i].Code, code) {
			coupon = &coupons[i]
			break
		}
	}
	if coupon == nil {
		return Quote{Amount: amount, Reason: "Invalid code"}
	}

	if coupon.Expires != "" && coupon.Expires < today {
		return Quote{Amount: amount, Reason: "Expired code"}
	}

	if amount < coupon.MinAmount {
		return Quote{Amount: amount, Reason: fmt.Sprintf("Min amount ₹%d", coupon.MinAmount)}
	}

	var discount int
	switch coupon.Type {
	case facility.CouponTypeFlat:
		discount = coupon.Value
	case facility.CouponTypePercent:
		discount = int(math.Round(float64(amount) * float64(coupon.Value) / 100))
	}

	final := amount - discount
	if final < 0 {
		final = 0
	}

	return Quote{Amount: final, Discount: discount, Code: coupon.Code}
}
