package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turfbook/internal/slots"
)

// ListQuery holds the admin listing filters
type ListQuery struct {
	Date    string
	CourtID string
}

type Repository interface {
	// Read operations
	ListAll(ctx context.Context) ([]Reservation, error)
	List(ctx context.Context, query ListQuery) ([]Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	ListIntervals(ctx context.Context, courtID, dateISO string) ([]slots.Interval, error)

	// Atomic all-or-nothing batch creation with per-occurrence availability check
	CreateBatchIfFree(ctx context.Context, occurrences []Reservation) error

	// Administrative operations
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	// Whole-collection replace semantics
	ReplaceAll(ctx context.Context, all []Reservation) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListAll(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]Reservation, error) {
	var out []Reservation

	q := r.db.WithContext(ctx).Model(&Reservation{})
	if query.Date != "" {
		q = q.Where("date = ?", query.Date)
	}
	if query.CourtID != "" {
		q = q.Where("court_id = ?", query.CourtID)
	}

	err := q.Order("start_time ASC").Find(&out).Error
	return out, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var res Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListIntervals implements the slots.ReservationReader used by the
// availability resolver
func (r *repository) ListIntervals(ctx context.Context, courtID, dateISO string) ([]slots.Interval, error) {
	var rows []Reservation
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, dateISO).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	intervals := make([]slots.Interval, 0, len(rows))
	for i := range rows {
		intervals = append(intervals, rows[i].Interval())
	}
	return intervals, nil
}

// CreateBatchIfFree inserts every occurrence or none. Rows for each
// occurrence's court and date are locked for update, then re-classified
// against the current store state; any booked occurrence rolls the whole
// batch back with a ConflictError naming its date.
func (r *repository) CreateBatchIfFree(ctx context.Context, occurrences []Reservation) error {
	if len(occurrences) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range occurrences {
			occ := &occurrences[i]

			var existing []Reservation
			err := tx.
				Set("gorm:query_option", "FOR UPDATE").
				Where("court_id = ? AND date = ?", occ.CourtID, occ.Date).
				Find(&existing).Error
			if err != nil {
				return fmt.Errorf("failed to lock reservations for %s: %w", occ.Date, err)
			}

			booked := make([]slots.Interval, 0, len(existing))
			for j := range existing {
				booked = append(booked, existing[j].Interval())
			}

			classified := slots.Classify([]slots.Interval{occ.Interval()}, booked)
			if classified[0].Status == slots.StatusBooked {
				return &ConflictError{Date: occ.Date}
			}

			if err := tx.Create(occ).Error; err != nil {
				return fmt.Errorf("failed to create reservation for %s: %w", occ.Date, err)
			}
		}
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&Reservation{}).Error
}

// ReplaceAll swaps the whole collection in one transaction
func (r *repository) ReplaceAll(ctx context.Context, all []Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to clear reservations: %w", err)
		}
		if len(all) == 0 {
			return nil
		}
		if err := tx.Create(&all).Error; err != nil {
			return fmt.Errorf("failed to write reservations: %w", err)
		}
		return nil
	})
}

// IsNotFound reports whether err is the store's missing-record error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// wrapStoreErr normalizes store failures, surfacing timeouts as retryable
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &StoreError{Op: op, Err: fmt.Errorf("store call timed out: %w", err)}
	}
	return &StoreError{Op: op, Err: err}
}
