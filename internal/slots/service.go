package slots

import (
	"context"
	"fmt"

	"turfbook/internal/facility"
	"turfbook/internal/pricing"
)

// ReservationReader provides the booked intervals for a court and date
// (defined here to avoid a circular dependency on the reservations package)
type ReservationReader interface {
	ListIntervals(ctx context.Context, courtID, dateISO string) ([]Interval, error)
}

// DaySchedule is the bookable view of one court on one date
type DaySchedule struct {
	Date       string       `json:"date"`
	CourtID    string       `json:"court_id"`
	CourtLabel string       `json:"court_label"`
	Slots      []PricedSlot `json:"slots"`
}

// Service composes the slot generator, availability resolver and pricing
// engine into the schedule view
type Service interface {
	DaySchedule(ctx context.Context, dateISO, courtID string) (*DaySchedule, error)
}

type service struct {
	cfg    *facility.Config
	reader ReservationReader
}

// NewService creates a new schedule service
func NewService(cfg *facility.Config, reader ReservationReader) Service {
	return &service{cfg: cfg, reader: reader}
}

// DaySchedule re-reads the reservation store on every call so classification
// never goes stale
func (s *service) DaySchedule(ctx context.Context, dateISO, courtID string) (*DaySchedule, error) {
	court, ok := s.cfg.CourtByID(courtID)
	if !ok {
		return nil, fmt.Errorf("unknown court %q", courtID)
	}

	day, err := ParseDate(dateISO, s.cfg)
	if err != nil {
		return nil, err
	}

	booked, err := s.reader.ListIntervals(ctx, courtID, dateISO)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	classified := Classify(Generate(day, court, s.cfg), booked)

	priced := make([]PricedSlot, 0, len(classified))
	for _, slot := range classified {
		priced = append(priced, PricedSlot{
			Interval: slot.Interval,
			Status:   slot.Status,
			Price:    pricing.BasePrice(court, slot.Start, s.cfg.PeakHours),
		})
	}

	return &DaySchedule{
		Date:       dateISO,
		CourtID:    court.ID,
		CourtLabel: court.Label,
		Slots:      priced,
	}, nil
}
