package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/facility"
	"turfbook/internal/pricing"
	"turfbook/internal/reservations"
	"turfbook/internal/shared/config"
	"turfbook/internal/shared/database"
	"turfbook/internal/slots"
	"turfbook/internal/waitlist"
)

type Seeder struct {
	db  *database.DB
	fac *facility.Config
}

func main() {
	fmt.Println("Starting turfbook database seeder...")

	cfg := config.Load()

	fac, err := facility.Load(cfg.FacilityPath)
	if err != nil {
		log.Fatalf("Failed to load facility document: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, fac: fac}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding demo bookings...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed, database is ready for testing.")
}

// CleanDatabase truncates all tables
func (s *Seeder) CleanDatabase() error {
	tables := []string{"reservations", "waitlist_entries"}
	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// SeedAll fills the next three days with a spread of demo bookings plus a
// couple of waitlist entries
func (s *Seeder) SeedAll() error {
	ctx := context.Background()
	repo := reservations.NewRepository(s.db.GetPostgreSQL())

	customers := []struct {
		name  string
		phone string
	}{
		{"Asha Rao", "+919876543210"},
		{"Vikram Shetty", "+919812345678"},
		{"Neha Kulkarni", "+917700112233"},
		{"Rohan Das", "+918899776655"},
	}

	today := time.Now().In(s.fac.Location)
	created := 0

	for dayOffset := 0; dayOffset < 3; dayOffset++ {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.fac.Location).
			AddDate(0, 0, dayOffset)
		dateISO := day.Format("2006-01-02")

		for courtIdx, court := range s.fac.Courts {
			candidates := slots.Generate(day, court, s.fac)
			if len(candidates) == 0 {
				continue
			}

			// book every third slot, staggered per court
			for i := courtIdx; i < len(candidates); i += 3 {
				slot := candidates[i]
				customer := customers[(i+courtIdx)%len(customers)]
				price := pricing.BasePrice(court, slot.Start, s.fac.PeakHours)

				err := repo.CreateBatchIfFree(ctx, []reservations.Reservation{{
					ID:         uuid.New(),
					CourtID:    court.ID,
					CourtLabel: court.Label,
					Date:       dateISO,
					StartTime:  slot.Start,
					EndTime:    slot.End,
					Price:      price,
					Name:       customer.name,
					Phone:      customer.phone,
					Notes:      "demo booking",
					CreatedAt:  time.Now(),
				}})
				if err != nil {
					return fmt.Errorf("failed to seed reservation: %w", err)
				}
				created++
			}
		}
	}
	fmt.Printf("Created %d reservations\n", created)

	waitlistRepo := waitlist.NewRepository(s.db.GetPostgreSQL())
	entries := []waitlist.Entry{
		{ID: uuid.New(), CourtID: s.fac.Courts[0].ID, Date: today.Format("2006-01-02"), Start: "18:00", Name: "Kiran Jain", Phone: "+919911223344"},
		{ID: uuid.New(), CourtID: s.fac.Courts[0].ID, Date: today.Format("2006-01-02"), Start: "19:00", Name: "Meera Iyer", Phone: "+918822334455"},
	}
	for i := range entries {
		if err := waitlistRepo.Create(ctx, &entries[i]); err != nil {
			return fmt.Errorf("failed to seed waitlist entry: %w", err)
		}
	}
	fmt.Printf("Created %d waitlist entries\n", len(entries))

	return nil
}
