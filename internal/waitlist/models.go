package waitlist

import (
	"time"

	"github.com/google/uuid"
)

// Entry records interest in a specific unavailable interval. Its lifecycle is
// independent of reservations: entries are never auto-matched when a slot
// frees up, only recorded and removed by hand.
type Entry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CourtID   string    `json:"court_id" gorm:"type:varchar(64);not null;index:idx_waitlist_court_date"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;index:idx_waitlist_court_date"`
	Start     string    `json:"start" gorm:"type:varchar(5);not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Entry) TableName() string {
	return "waitlist_entries"
}

// JoinRequest is the payload for adding a waitlist entry
type JoinRequest struct {
	CourtID string `json:"court_id" binding:"required"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Start   string `json:"start" binding:"required,datetime=15:04"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required,phone"`
}
