package slots

import "time"

// Status classifies a candidate slot against the existing reservations
type Status string

const (
	StatusFree   Status = "free"
	StatusBooked Status = "booked"
)

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// ClassifiedSlot is a candidate interval with its availability status
type ClassifiedSlot struct {
	Interval
	Status Status `json:"status"`
}

// PricedSlot is the schedule view of a slot: classified and priced
type PricedSlot struct {
	Interval
	Status Status `json:"status"`
	Price  int    `json:"price"`
}
