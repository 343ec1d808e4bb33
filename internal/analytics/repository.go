package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the analytics repository interface
type Repository interface {
	GetTotals(ctx context.Context) (bookings, revenue, discount int, err error)
	GetWaitlistSize(ctx context.Context) (int, error)
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenue, error)
	GetHourlyOccupancy(ctx context.Context) ([]HourlyOccupancy, error)
	GetCourtUsage(ctx context.Context) ([]CourtUsage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTotals(ctx context.Context) (int, int, int, error) {
	var row struct {
		Bookings int
		Revenue  int
		Discount int
	}
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("COUNT(*) as bookings, COALESCE(SUM(price), 0) as revenue, COALESCE(SUM(discount), 0) as discount").
		Scan(&row).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get booking totals: %w", err)
	}
	return row.Bookings, row.Revenue, row.Discount, nil
}

func (r *repository) GetWaitlistSize(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("waitlist_entries").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count waitlist entries: %w", err)
	}
	return int(count), nil
}

func (r *repository) GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenue, error) {
	var rows []DailyRevenue
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("date, COALESCE(SUM(price), 0) as revenue, COUNT(*) as bookings").
		Where("date >= TO_CHAR(CURRENT_DATE - make_interval(days => ?), 'YYYY-MM-DD')", days).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	return rows, nil
}

func (r *repository) GetHourlyOccupancy(ctx context.Context) ([]HourlyOccupancy, error) {
	var rows []HourlyOccupancy
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("EXTRACT(HOUR FROM start_time)::int as hour, COUNT(*) as bookings").
		Group("hour").
		Order("hour ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly occupancy: %w", err)
	}
	return rows, nil
}

func (r *repository) GetCourtUsage(ctx context.Context) ([]CourtUsage, error) {
	var rows []CourtUsage
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("court_id, MAX(court_label) as court_label, COUNT(*) as bookings, COALESCE(SUM(price), 0) as revenue").
		Group("court_id").
		Order("bookings DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get court usage: %w", err)
	}
	return rows, nil
}
