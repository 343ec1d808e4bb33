package analytics

import (
	"context"
	"fmt"
	"time"

	"turfbook/pkg/cache"
)

const (
	summaryCacheKey = "turfbook:analytics:summary"
	revenueDays     = 30
)

// Service defines the analytics service interface
type Service interface {
	GetSummary(ctx context.Context) (*Summary, error)
	InvalidateSummary(ctx context.Context)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

// NewService creates a new analytics service. cacheService may be nil, in
// which case every summary request hits the database.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
		cacheTTL:     cacheTTL,
	}
}

func (s *service) GetSummary(ctx context.Context) (*Summary, error) {
	if s.cacheService != nil {
		var cached Summary
		err := s.cacheService.GetOrSet(ctx, summaryCacheKey, s.cacheTTL, func() (interface{}, error) {
			return s.buildSummary(ctx)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
		// Cache layer misbehaving; fall through to the database
	}

	return s.buildSummary(ctx)
}

// InvalidateSummary drops the cached summary after administrative mutations
func (s *service) InvalidateSummary(ctx context.Context) {
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, summaryCacheKey)
	}
}

func (s *service) buildSummary(ctx context.Context) (*Summary, error) {
	bookings, revenue, discount, err := s.repo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	waitlistSize, err := s.repo.GetWaitlistSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	revenueByDay, err := s.repo.GetDailyRevenue(ctx, revenueDays)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	occupancy, err := s.repo.GetHourlyOccupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	usage, err := s.repo.GetCourtUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	return &Summary{
		TotalBookings:   bookings,
		TotalRevenue:    revenue,
		TotalDiscount:   discount,
		WaitlistSize:    waitlistSize,
		RevenueByDay:    revenueByDay,
		OccupancyByHour: occupancy,
		UsageByCourt:    usage,
	}, nil
}
