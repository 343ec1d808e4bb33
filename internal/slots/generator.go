package slots

import (
	"fmt"
	"time"

	"turfbook/internal/facility"
)

// ParseDate parses an ISO calendar date in the facility timezone
func ParseDate(dateISO string, cfg *facility.Config) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dateISO, cfg.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}
	return day, nil
}

// Generate produces the ordered candidate intervals for a court on the given
// day (midnight in the facility timezone). Slots start at the opening hour,
// run for the court's duration and are separated by the facility buffer. A
// slot whose end would run past closing is not emitted; the result is empty
// when no full slot fits the operating window.
func Generate(day time.Time, court facility.Court, cfg *facility.Config) []Interval {
	var out []Interval

	duration := time.Duration(court.DurationMins) * time.Minute
	buffer := time.Duration(cfg.BufferMins) * time.Minute
	closeHour := cfg.Hours.Close

	start := time.Date(day.Year(), day.Month(), day.Day(), cfg.Hours.Open, 0, 0, 0, cfg.Location)
	for {
		end := start.Add(duration)
		if end.Hour() > closeHour || (end.Hour() == closeHour && end.Minute() > 0) {
			break
		}
		// guard against a window spilling into the next day
		if end.Day() != start.Day() {
			break
		}
		out = append(out, Interval{Start: start, End: end})
		start = end.Add(buffer)
	}

	return out
}
