package waitlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for waitlist data access
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context) ([]Entry, error)
	ListForSlot(ctx context.Context, courtID, dateISO string) ([]Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("date ASC, start ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) ListForSlot(ctx context.Context, courtID, dateISO string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, dateISO).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
