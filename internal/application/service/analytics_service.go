package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kibetdev/salespulse-api/internal/application/analytics"
	"github.com/kibetdev/salespulse-api/internal/domain/enum"
	"github.com/kibetdev/salespulse-api/internal/domain/repository"
)

// AnalyticsService computes dashboard snapshots on top of the sale
// repository. The engine itself is pure; this service owns loading the
// sales and memoizing results by input fingerprint so an unchanged
// (sales, period) pair short-circuits to the previous snapshot.
type AnalyticsService struct {
	saleRepo repository.SaleRepository
	cache    *analytics.SnapshotCache
	topLimit int
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(saleRepo repository.SaleRepository, cache *analytics.SnapshotCache, topLimit int) *AnalyticsService {
	if topLimit <= 0 {
		topLimit = analytics.DefaultTopProductsLimit
	}
	return &AnalyticsService{
		saleRepo: saleRepo,
		cache:    cache,
		topLimit: topLimit,
	}
}

// GetSnapshot resolves the requested period, loads the sales covering both
// the current and the previous window, and returns the computed (or
// cached) analytics snapshot.
func (s *AnalyticsService) GetSnapshot(ctx context.Context, kind enum.PeriodKind, customStart, customEnd *time.Time) (*analytics.Snapshot, error) {
	period := analytics.ComputePeriod(kind, time.Now(), customStart, customEnd)
	previous := analytics.PreviousPeriod(period)

	from, to := loadWindow(period, previous)
	sales, err := s.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for analytics: %w", err)
	}

	key := analytics.Fingerprint(sales, period, s.topLimit)
	if snapshot, ok := s.cache.Get(key); ok {
		return snapshot, nil
	}

	snapshot := analytics.Compute(sales, period, s.topLimit)
	s.cache.Put(key, snapshot)
	return snapshot, nil
}

// GetTopProducts ranks the best-selling products of the requested period
func (s *AnalyticsService) GetTopProducts(ctx context.Context, kind enum.PeriodKind, customStart, customEnd *time.Time, limit int) ([]analytics.ProductRank, error) {
	period := analytics.ComputePeriod(kind, time.Now(), customStart, customEnd)

	sales, err := s.saleRepo.ListBetween(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for product ranking: %w", err)
	}

	current := analytics.FilterByPeriod(sales, period)
	return analytics.TopProducts(current, limit), nil
}

// loadWindow returns the single [from, to] range covering both the current
// and the previous period, so one repository query serves both filters
func loadWindow(current, previous analytics.Period) (time.Time, time.Time) {
	from := current.Start
	if previous.Start.Before(from) {
		from = previous.Start
	}
	to := current.End
	if previous.End.After(to) {
		to = previous.End
	}
	return from, to
}
