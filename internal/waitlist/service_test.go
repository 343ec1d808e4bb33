package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turfbook/internal/facility"
	"turfbook/pkg/logger"
)

type fakeRepo struct {
	entries []Entry
}

func (f *fakeRepo) Create(ctx context.Context, entry *Entry) error {
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]Entry, error) {
	return append([]Entry(nil), f.entries...), nil
}

func (f *fakeRepo) ListForSlot(ctx context.Context, courtID, dateISO string) ([]Entry, error) {
	var out []Entry
	for _, e := range f.entries {
		if e.CourtID == courtID && e.Date == dateISO {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func waitlistConfig() *facility.Config {
	return &facility.Config{
		Hours:  facility.Hours{Open: 6, Close: 22},
		Courts: []facility.Court{{ID: "turf-a", Label: "Turf A", DurationMins: 60, BasePrice: 1000}},
	}
}

func joinRequest() JoinRequest {
	return JoinRequest{
		CourtID: "turf-a",
		Date:    "2026-09-07",
		Start:   "18:00",
		Name:    "Ravi",
		Phone:   "+919812345678",
	}
}

func TestJoinAlwaysSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, waitlistConfig(), logger.GetDefault(), 5*time.Second)

	// duplicates are allowed: same person, same slot, twice
	first, err := svc.Join(context.Background(), joinRequest())
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	second, err := svc.Join(context.Background(), joinRequest())
	if err != nil {
		t.Fatalf("duplicate Join() error = %v", err)
	}
	if first.ID == second.ID {
		t.Error("entries must have distinct ids")
	}
	if len(repo.entries) != 2 {
		t.Errorf("stored %d entries, want 2", len(repo.entries))
	}
}

func TestJoinUnknownCourt(t *testing.T) {
	svc := NewService(&fakeRepo{}, waitlistConfig(), logger.GetDefault(), 5*time.Second)

	req := joinRequest()
	req.CourtID = "turf-z"

	if _, err := svc.Join(context.Background(), req); err == nil {
		t.Error("Join() with unknown court should fail")
	}
}

func TestListForSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, waitlistConfig(), logger.GetDefault(), 5*time.Second)

	a := joinRequest()
	b := joinRequest()
	b.Date = "2026-09-08"
	if _, err := svc.Join(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Join(context.Background(), b); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.ListForSlot(context.Background(), "turf-a", "2026-09-07")
	if err != nil {
		t.Fatalf("ListForSlot() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2026-09-07" {
		t.Errorf("ListForSlot() = %+v, want one entry on 2026-09-07", entries)
	}
}

func TestRemove(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, waitlistConfig(), logger.GetDefault(), 5*time.Second)

	entry, err := svc.Join(context.Background(), joinRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Remove(context.Background(), entry.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("stored %d entries after remove, want 0", len(repo.entries))
	}

	err = svc.Remove(context.Background(), entry.ID)
	if !IsNotFound(err) {
		t.Errorf("second Remove() error = %v, want not-found", err)
	}
}
