package reservations

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/facility"
	"turfbook/internal/pricing"
	"turfbook/internal/slots"
	"turfbook/pkg/logger"
)

// phonePattern matches an international-looking number: 8-15 digits with an
// optional leading +
var phonePattern = regexp.MustCompile(`^\+?\d{8,15}$`)

// ValidPhone reports whether s looks like a bookable phone number
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

const defaultOccurrences = 2

// Notifier dispatches the payment notification after a successful commit
// (defined here to avoid a circular dependency on the payments package)
type Notifier interface {
	NotifyPayment(ctx context.Context, notification PaymentNotification) error
}

// BookingRequest describes the first occurrence of a booking plus its
// recurrence settings
type BookingRequest struct {
	CourtID     string `json:"court_id" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Start       string `json:"start" binding:"required,datetime=15:04"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
	CouponCode  string `json:"coupon_code"`
	Recurring   bool   `json:"recurring"`
	Occurrences int    `json:"occurrences"`
}

// Service interface defines the contract for reservation business logic
type Service interface {
	Commit(ctx context.Context, req BookingRequest) ([]Reservation, error)
	List(ctx context.Context, query ListQuery) ([]Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	ExportCSV(ctx context.Context) ([]byte, error)
	ImportAll(ctx context.Context, rows []Reservation) error
}

type service struct {
	repo         Repository
	cfg          *facility.Config
	notifier     Notifier
	log          *logger.Logger
	storeTimeout time.Duration

	// injectable clock for deterministic coupon expiry checks in tests
	now func() time.Time
}

// NewService creates a new reservation service. notifier may be nil when the
// payment sink is disabled.
func NewService(repo Repository, cfg *facility.Config, notifier Notifier, log *logger.Logger, storeTimeout time.Duration) Service {
	return &service{
		repo:         repo,
		cfg:          cfg,
		notifier:     notifier,
		log:          log,
		storeTimeout: storeTimeout,
		now:          time.Now,
	}
}

// Commit validates a booking request, expands it into its dated occurrences
// and persists them as a unit. Any failure leaves the store untouched.
func (s *service) Commit(ctx context.Context, req BookingRequest) ([]Reservation, error) {
	// Step 1: validate customer fields
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if !phonePattern.MatchString(req.Phone) {
		return nil, &ValidationError{
			Field:   "phone",
			Message: "Enter a valid phone number with country code (e.g., +91xxxxxxxxxx).",
		}
	}
	if req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "Please enter your name."}
	}

	court, ok := s.cfg.CourtByID(req.CourtID)
	if !ok {
		return nil, &ValidationError{Field: "court_id", Message: fmt.Sprintf("Unknown court %q.", req.CourtID)}
	}

	// The requested interval must be one of the generated candidates for the
	// day; anything else is malformed input, not a conflict.
	firstStart, firstEnd, err := s.resolveSlot(req.Date, req.Start, court)
	if err != nil {
		return nil, err
	}

	// Step 2: price the first occurrence and apply the coupon. A rejected
	// coupon blocks the entire booking.
	basePrice := pricing.BasePrice(court, firstStart, s.cfg.PeakHours)
	today := s.now().In(s.cfg.Location).Format("2006-01-02")
	quote := pricing.ApplyCoupon(req.CouponCode, basePrice, s.cfg.Coupons, today)
	if quote.Rejected() {
		return nil, &CouponError{Reason: quote.Reason}
	}

	// Step 3: occurrence count
	count := 1
	if req.Recurring {
		count = req.Occurrences
		if count < 1 {
			count = defaultOccurrences
		}
	}

	// Step 4: expand occurrences, each advanced by an exact 7x24h offset
	createdAt := s.now()
	occurrences := make([]Reservation, 0, count)
	for i := 0; i < count; i++ {
		offset := time.Duration(i) * 7 * 24 * time.Hour
		occStart := firstStart.Add(offset)
		occEnd := firstEnd.Add(offset)

		occurrences = append(occurrences, Reservation{
			ID:         uuid.New(),
			CourtID:    court.ID,
			CourtLabel: court.Label,
			Date:       occStart.In(s.cfg.Location).Format("2006-01-02"),
			StartTime:  occStart,
			EndTime:    occEnd,
			Price:      quote.Amount,
			Discount:   quote.Discount,
			CouponCode: quote.Code,
			Name:       req.Name,
			Phone:      req.Phone,
			Notes:      strings.TrimSpace(req.Notes),
			CreatedAt:  createdAt,
		})
	}

	// Steps 5-6: availability is re-checked per occurrence against current
	// store state inside one transaction; all occurrences commit or none do
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.repo.CreateBatchIfFree(storeCtx, occurrences); err != nil {
		if conflict, ok := asConflict(err); ok {
			return nil, conflict
		}
		return nil, wrapStoreErr("save", err)
	}

	for i := range occurrences {
		s.log.LogReservationCreated(ctx, occurrences[i].ID.String(), court.ID, occurrences[i].Date)
	}

	// Booking success is independent of payment notification success
	s.dispatchPaymentNotification(ctx, &occurrences[0])

	return occurrences, nil
}

// resolveSlot maps the requested date and start time onto a generated
// candidate interval for the court
func (s *service) resolveSlot(dateISO, startHHMM string, court facility.Court) (time.Time, time.Time, error) {
	day, err := slots.ParseDate(dateISO, s.cfg)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format."}
	}

	for _, candidate := range slots.Generate(day, court, s.cfg) {
		if candidate.Start.Format("15:04") == startHHMM {
			return candidate.Start, candidate.End, nil
		}
	}

	return time.Time{}, time.Time{}, &ValidationError{
		Field:   "start",
		Message: fmt.Sprintf("No bookable slot starts at %s on %s.", startHHMM, dateISO),
	}
}

func (s *service) dispatchPaymentNotification(ctx context.Context, first *Reservation) {
	if s.notifier == nil || !s.cfg.Payments.Enabled {
		return
	}

	err := s.notifier.NotifyPayment(ctx, PaymentNotification{
		CustomerName:  first.Name,
		CustomerPhone: first.Phone,
		Amount:        first.Price,
		ReservationID: first.ID.String(),
	})
	s.log.LogPaymentNotification(ctx, first.ID.String(), first.Price, err)
}

func (s *service) List(ctx context.Context, query ListQuery) ([]Reservation, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	out, err := s.repo.List(storeCtx, query)
	if err != nil {
		return nil, wrapStoreErr("list", err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.repo.GetByID(storeCtx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Delete(storeCtx, id); err != nil {
		if IsNotFound(err) {
			return err
		}
		return wrapStoreErr("delete", err)
	}

	s.log.LogReservationDeleted(ctx, id.String())
	return nil
}

func (s *service) DeleteAll(ctx context.Context) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.DeleteAll(storeCtx); err != nil {
		return wrapStoreErr("clear", err)
	}
	return nil
}

func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.repo.ListAll(storeCtx)
	if err != nil {
		return nil, wrapStoreErr("export", err)
	}
	return BuildCSV(rows), nil
}

// ImportAll replaces the whole collection, e.g. when restoring a backup. Rows
// are taken as-is; overlap repair is not attempted.
func (s *service) ImportAll(ctx context.Context, rows []Reservation) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.ReplaceAll(storeCtx, rows); err != nil {
		return wrapStoreErr("import", err)
	}
	return nil
}

func asConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
