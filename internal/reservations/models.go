package reservations

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/slots"
)

// Reservation is one committed occurrence. Never mutated after creation;
// administrative deletion is the only lifecycle change.
type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourtID    string    `gorm:"type:varchar(64);index:idx_court_date;not null" json:"court_id"`
	CourtLabel string    `gorm:"type:varchar(128);not null" json:"court_label"`
	Date       string    `gorm:"type:varchar(10);index:idx_court_date;not null" json:"date"`
	StartTime  time.Time `gorm:"not null;index" json:"start"`
	EndTime    time.Time `gorm:"not null" json:"end"`
	Price      int       `gorm:"not null" json:"price"`
	Discount   int       `gorm:"not null;default:0" json:"discount"`
	CouponCode string    `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`
	Name       string    `gorm:"type:varchar(128);not null" json:"name"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// Interval returns the reservation's half-open time range
func (r *Reservation) Interval() slots.Interval {
	return slots.Interval{Start: r.StartTime, End: r.EndTime}
}

// PaymentNotification is the payload handed to the external payment
// collaborator after a successful commit
type PaymentNotification struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Amount        int    `json:"amount"`
	ReservationID string `json:"reservation_id"`
}
