package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turfbook/internal/facility"
	"turfbook/pkg/logger"
)

// Service interface defines the contract for waitlist business logic
type Service interface {
	Join(ctx context.Context, req JoinRequest) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListForSlot(ctx context.Context, courtID, dateISO string) ([]Entry, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	cfg          *facility.Config
	log          *logger.Logger
	storeTimeout time.Duration
}

func NewService(repo Repository, cfg *facility.Config, log *logger.Logger, storeTimeout time.Duration) Service {
	return &service{
		repo:         repo,
		cfg:          cfg,
		log:          log,
		storeTimeout: storeTimeout,
	}
}

// Join records a waitlist entry. There is no conflict check: joining always
// succeeds and duplicates are allowed.
func (s *service) Join(ctx context.Context, req JoinRequest) (*Entry, error) {
	if _, ok := s.cfg.CourtByID(req.CourtID); !ok {
		return nil, fmt.Errorf("unknown court %q", req.CourtID)
	}

	entry := &Entry{
		ID:      uuid.New(),
		CourtID: req.CourtID,
		Date:    req.Date,
		Start:   req.Start,
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.repo.Create(storeCtx, entry); err != nil {
		return nil, fmt.Errorf("failed to join waitlist: %w", err)
	}

	s.log.LogWaitlistJoined(ctx, entry.ID.String(), entry.CourtID, entry.Date)
	return entry, nil
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	entries, err := s.repo.List(storeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}
	return entries, nil
}

func (s *service) ListForSlot(ctx context.Context, courtID, dateISO string) ([]Entry, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	entries, err := s.repo.ListForSlot(storeCtx, courtID, dateISO)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist for slot: %w", err)
	}
	return entries, nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Delete(storeCtx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove waitlist entry: %w", err)
	}
	return nil
}

// IsNotFound reports whether err indicates a missing waitlist entry
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
