package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turfbook/internal/facility"
	"turfbook/internal/slots"
	"turfbook/pkg/logger"
)

// fakeRepo is an in-memory Repository with the same all-or-nothing semantics
// as the gorm implementation
type fakeRepo struct {
	rows    []Reservation
	failAll bool
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]Reservation, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	return append([]Reservation(nil), f.rows...), nil
}

func (f *fakeRepo) List(ctx context.Context, query ListQuery) ([]Reservation, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	var out []Reservation
	for _, r := range f.rows {
		if query.Date != "" && r.Date != query.Date {
			continue
		}
		if query.CourtID != "" && r.CourtID != query.CourtID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListIntervals(ctx context.Context, courtID, dateISO string) ([]slots.Interval, error) {
	var out []slots.Interval
	for i := range f.rows {
		if f.rows[i].CourtID == courtID && f.rows[i].Date == dateISO {
			out = append(out, f.rows[i].Interval())
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBatchIfFree(ctx context.Context, occurrences []Reservation) error {
	if f.failAll {
		return errors.New("store down")
	}
	for i := range occurrences {
		occ := &occurrences[i]
		booked, _ := f.ListIntervals(ctx, occ.CourtID, occ.Date)
		classified := slots.Classify([]slots.Interval{occ.Interval()}, booked)
		if classified[0].Status == slots.StatusBooked {
			return &ConflictError{Date: occ.Date}
		}
	}
	f.rows = append(f.rows, occurrences...)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteAll(ctx context.Context) error {
	f.rows = nil
	return nil
}

func (f *fakeRepo) ReplaceAll(ctx context.Context, all []Reservation) error {
	f.rows = append([]Reservation(nil), all...)
	return nil
}

type fakeNotifier struct {
	calls []PaymentNotification
	err   error
}

func (f *fakeNotifier) NotifyPayment(ctx context.Context, n PaymentNotification) error {
	f.calls = append(f.calls, n)
	return f.err
}

func bookingConfig() *facility.Config {
	return &facility.Config{
		Hours:      facility.Hours{Open: 6, Close: 22},
		BufferMins: 0,
		PeakHours:  facility.PeakHours{Start: 18, End: 22, Multiplier: 1.5},
		Courts: []facility.Court{
			{ID: "turf-a", Label: "Turf A", DurationMins: 60, BasePrice: 1000},
		},
		Coupons: []facility.Coupon{
			{Code: "SAVE100", Type: facility.CouponTypeFlat, Value: 100, MinAmount: 500},
			{Code: "TINY", Type: facility.CouponTypeFlat, Value: 50, MinAmount: 5000},
		},
		Payments: facility.Payments{Enabled: true, Provider: "razorpay", Currency: "INR"},
		Location: time.UTC,
	}
}

func newTestService(repo Repository, cfg *facility.Config, notifier Notifier) *service {
	svc := NewService(repo, cfg, notifier, logger.GetDefault(), 5*time.Second).(*service)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validRequest() BookingRequest {
	return BookingRequest{
		CourtID: "turf-a",
		Date:    "2026-09-07",
		Start:   "18:00",
		Name:    "Asha",
		Phone:   "+919876543210",
	}
}

func TestCommitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*BookingRequest)
		wantField string
	}{
		{"missing phone", func(r *BookingRequest) { r.Phone = "" }, "phone"},
		{"short phone", func(r *BookingRequest) { r.Phone = "+12345" }, "phone"},
		{"alphabetic phone", func(r *BookingRequest) { r.Phone = "+91abcdefgh" }, "phone"},
		{"too long phone", func(r *BookingRequest) { r.Phone = "+1234567890123456" }, "phone"},
		{"missing name", func(r *BookingRequest) { r.Name = "  " }, "name"},
		{"unknown court", func(r *BookingRequest) { r.CourtID = "turf-z" }, "court_id"},
		{"bad date", func(r *BookingRequest) { r.Date = "07-09-2026" }, "date"},
		{"start not a slot boundary", func(r *BookingRequest) { r.Start = "18:30" }, "start"},
		{"start outside hours", func(r *BookingRequest) { r.Start = "05:00" }, "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newTestService(repo, bookingConfig(), nil)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Commit(context.Background(), req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Commit() error = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("failing field = %q, want %q", validationErr.Field, tt.wantField)
			}
			if len(repo.rows) != 0 {
				t.Errorf("store mutated on validation failure: %d rows", len(repo.rows))
			}
		})
	}
}

func TestCommitSingleOccurrence(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, bookingConfig(), notifier)

	created, err := svc.Commit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d reservations, want 1", len(created))
	}

	res := created[0]
	if res.Price != 1500 {
		t.Errorf("peak price = %d, want 1500", res.Price)
	}
	if res.Date != "2026-09-07" {
		t.Errorf("date = %s, want 2026-09-07", res.Date)
	}
	if res.EndTime.Sub(res.StartTime) != time.Hour {
		t.Errorf("duration = %v, want 1h", res.EndTime.Sub(res.StartTime))
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(notifier.calls))
	}
	n := notifier.calls[0]
	if n.Amount != 1500 || n.ReservationID != res.ID.String() || n.CustomerPhone != "+919876543210" {
		t.Errorf("notification = %+v", n)
	}
}

func TestCommitOffPeakPrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	req := validRequest()
	req.Start = "10:00"

	created, err := svc.Commit(context.Background(), req)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if created[0].Price != 1000 {
		t.Errorf("off-peak price = %d, want 1000", created[0].Price)
	}
}

func TestCommitWithCoupon(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	req := validRequest()
	req.CouponCode = "save100"

	created, err := svc.Commit(context.Background(), req)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	res := created[0]
	if res.Price != 1400 || res.Discount != 100 || res.CouponCode != "SAVE100" {
		t.Errorf("priced %d discount %d coupon %q, want 1400/100/SAVE100", res.Price, res.Discount, res.CouponCode)
	}
}

func TestCommitRejectedCouponBlocksBooking(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, bookingConfig(), notifier)

	req := validRequest()
	req.CouponCode = "TINY" // min amount 5000, slot prices at 1500

	_, err := svc.Commit(context.Background(), req)
	var couponErr *CouponError
	if !errors.As(err, &couponErr) {
		t.Fatalf("Commit() error = %v, want CouponError", err)
	}
	if couponErr.Reason != "Min amount ₹5000" {
		t.Errorf("reason = %q, want Min amount ₹5000", couponErr.Reason)
	}
	if len(repo.rows) != 0 {
		t.Error("rejected coupon must not create reservations")
	}
	if len(notifier.calls) != 0 {
		t.Error("rejected coupon must not notify payment")
	}
}

func TestCommitConflictOnFirstOccurrence(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	if _, err := svc.Commit(context.Background(), validRequest()); err != nil {
		t.Fatalf("first Commit() error = %v", err)
	}

	_, err := svc.Commit(context.Background(), validRequest())
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("Commit() error = %v, want ConflictError", err)
	}
	if conflictErr.Date != "2026-09-07" {
		t.Errorf("conflict date = %s, want 2026-09-07", conflictErr.Date)
	}
	if len(repo.rows) != 1 {
		t.Errorf("store has %d rows, want 1", len(repo.rows))
	}
}

func TestCommitRecurring(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	req := validRequest()
	req.Recurring = true
	req.Occurrences = 3

	created, err := svc.Commit(context.Background(), req)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created %d reservations, want 3", len(created))
	}

	wantDates := []string{"2026-09-07", "2026-09-14", "2026-09-21"}
	for i, res := range created {
		if res.Date != wantDates[i] {
			t.Errorf("occurrence %d date = %s, want %s", i, res.Date, wantDates[i])
		}
		if got := res.StartTime.Sub(created[0].StartTime); got != time.Duration(i)*7*24*time.Hour {
			t.Errorf("occurrence %d offset = %v, want %v", i, got, time.Duration(i)*7*24*time.Hour)
		}
		if res.Price != created[0].Price {
			t.Errorf("occurrence %d price = %d, want %d", i, res.Price, created[0].Price)
		}
	}
}

func TestCommitRecurringDefaultsToTwo(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	req := validRequest()
	req.Recurring = true

	created, err := svc.Commit(context.Background(), req)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if len(created) != 2 {
		t.Errorf("created %d reservations, want default 2", len(created))
	}
}

func TestCommitRecurringAllOrNothing(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	// occupy week 2's 18:00 slot
	blocker := validRequest()
	blocker.Date = "2026-09-14"
	if _, err := svc.Commit(context.Background(), blocker); err != nil {
		t.Fatalf("blocker Commit() error = %v", err)
	}

	req := validRequest()
	req.Recurring = true
	req.Occurrences = 2

	_, err := svc.Commit(context.Background(), req)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("Commit() error = %v, want ConflictError", err)
	}
	if conflictErr.Date != "2026-09-14" {
		t.Errorf("conflict date = %s, want 2026-09-14", conflictErr.Date)
	}

	// week 1 must not have been created either
	week1, _ := repo.ListIntervals(context.Background(), "turf-a", "2026-09-07")
	if len(week1) != 0 {
		t.Errorf("week 1 has %d reservations after failed batch, want 0", len(week1))
	}
}

func TestCommitNoOverlapAfterCommits(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	starts := []string{"06:00", "07:00", "18:00", "18:00", "07:00"}
	for _, start := range starts {
		req := validRequest()
		req.Start = start
		_, _ = svc.Commit(context.Background(), req)
	}

	for i := range repo.rows {
		for j := i + 1; j < len(repo.rows); j++ {
			a, b := repo.rows[i], repo.rows[j]
			if a.CourtID == b.CourtID && a.Date == b.Date && a.Interval().Overlaps(b.Interval()) {
				t.Errorf("overlapping reservations committed: %v and %v", a.Interval(), b.Interval())
			}
		}
	}
}

func TestCommitNotificationFailureDoesNotRollBack(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("broker unreachable")}
	svc := newTestService(repo, bookingConfig(), notifier)

	created, err := svc.Commit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Commit() error = %v, notification failure must not fail the booking", err)
	}
	if len(created) != 1 || len(repo.rows) != 1 {
		t.Errorf("reservation not committed: created=%d stored=%d", len(created), len(repo.rows))
	}
}

func TestCommitPaymentsDisabledSkipsNotification(t *testing.T) {
	cfg := bookingConfig()
	cfg.Payments.Enabled = false
	notifier := &fakeNotifier{}
	svc := newTestService(&fakeRepo{}, cfg, notifier)

	if _, err := svc.Commit(context.Background(), validRequest()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notifier called %d times with payments disabled", len(notifier.calls))
	}
}

func TestCommitStoreFailure(t *testing.T) {
	repo := &fakeRepo{failAll: true}
	svc := newTestService(repo, bookingConfig(), nil)

	_, err := svc.Commit(context.Background(), validRequest())
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Commit() error = %v, want StoreError", err)
	}
}

func TestImportAllReplacesCollection(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, bookingConfig(), nil)

	if _, err := svc.Commit(context.Background(), validRequest()); err != nil {
		t.Fatal(err)
	}

	replacement := []Reservation{
		{ID: uuid.New(), CourtID: "turf-a", CourtLabel: "Turf A", Date: "2026-10-01"},
		{ID: uuid.New(), CourtID: "turf-a", CourtLabel: "Turf A", Date: "2026-10-02"},
	}
	if err := svc.ImportAll(context.Background(), replacement); err != nil {
		t.Fatalf("ImportAll() error = %v", err)
	}

	if len(repo.rows) != 2 || repo.rows[0].Date != "2026-10-01" {
		t.Errorf("store after import = %+v, want the replacement collection", repo.rows)
	}
}

func TestDeleteMissingReservation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, bookingConfig(), nil)

	err := svc.Delete(context.Background(), uuid.New())
	if !IsNotFound(err) {
		t.Errorf("Delete() error = %v, want not-found", err)
	}
}
