package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"turfbook/internal/reservations"
	"turfbook/internal/waitlist"
)

// Migrate runs schema migrations for all persisted models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&reservations.Reservation{},
		&waitlist.Entry{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}
