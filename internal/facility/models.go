package facility

import "time"

// CouponType enumerates the supported discount shapes
type CouponType string

const (
	CouponTypeFlat    CouponType = "flat"
	CouponTypePercent CouponType = "percent"
)

// Hours is the daily operating window, whole hours 0-23
type Hours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// PeakHours is an hour range [Start, End) during which base price is multiplied
type PeakHours struct {
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Multiplier float64 `json:"multiplier"`
}

// Court is a bookable facility unit
type Court struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DurationMins int    `json:"durationMins"`
	BasePrice    int    `json:"basePrice"`
}

// Coupon is a named discount rule. Expires is an ISO date ("2006-01-02");
// empty means the coupon never expires.
type Coupon struct {
	Code      string     `json:"code"`
	Type      CouponType `json:"type"`
	Value     int        `json:"value"`
	MinAmount int        `json:"minAmount,omitempty"`
	Expires   string     `json:"expires,omitempty"`
}

// Payments holds the payment-provider notification settings
type Payments struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider"`
	Currency string `json:"currency"`
}

// Config is the facility document, loaded once at startup and immutable afterwards
type Config struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	WhatsApp     string    `json:"whatsapp"`
	Email        string    `json:"email"`
	Timezone     string    `json:"timezone"`
	Hours        Hours     `json:"hours"`
	BufferMins   int       `json:"bufferMins"`
	PeakHours    PeakHours `json:"peakHours"`
	Courts       []Court   `json:"courts"`
	Coupons      []Coupon  `json:"coupons"`
	Payments     Payments  `json:"payments"`
	Amenities    []string  `json:"amenities,omitempty"`
	Rules        []string  `json:"rules,omitempty"`
	RefundPolicy string    `json:"refundPolicy,omitempty"`

	// resolved from Timezone at load time
	Location *time.Location `json:"-"`
}

// CourtByID returns the court with the given id
func (c *Config) CourtByID(id string) (Court, bool) {
	for _, court := range c.Courts {
		if court.ID == id {
			return court, true
		}
	}
	return Court{}, false
}
