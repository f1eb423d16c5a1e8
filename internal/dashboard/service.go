package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const overviewCacheKey = "dashboard:overview"

type Service struct {
	logger   *slog.Logger
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(logger *slog.Logger, repo Repository, cache *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{logger: logger, repo: repo, cache: cache, cacheTTL: cacheTTL, now: time.Now}
}

// WithNow fixes the clock for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Overview serves the cached payload when fresh, otherwise fans the
// four aggregate queries out in parallel and caches the result. Cache
// failures degrade to a direct read.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if cached, err := s.cache.Get(ctx, overviewCacheKey).Bytes(); err == nil {
		var overview Overview
		if err := json.Unmarshal(cached, &overview); err == nil {
			return overview, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("dashboard cache read", slog.Any("error", err))
	}

	var overview Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.repo.Stats(gctx)
		overview.Stats = stats
		return err
	})
	g.Go(func() error {
		trends, err := s.repo.SalesTrends(gctx, TrendFilter{})
		overview.SalesTrends = trends
		return err
	})
	g.Go(func() error {
		dist, err := s.repo.Distribution(gctx)
		overview.Distribution = dist
		return err
	})
	g.Go(func() error {
		unpaid, err := s.repo.UnpaidPilgrims(gctx, s.now())
		overview.UnpaidPilgrims = unpaid
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.cache.Set(ctx, overviewCacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.logger.Warn("dashboard cache write", slog.Any("error", err))
		}
	}
	return overview, nil
}

// SalesTrends reads the monthly series for an arbitrary date range.
// Ranged reads bypass the overview cache, which only ever holds the
// default window.
func (s *Service) SalesTrends(ctx context.Context, filter TrendFilter) ([]SalesTrend, error) {
	return s.repo.SalesTrends(ctx, filter)
}

// Invalidate drops the cached overview, forcing the next read to hit
// the database.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Del(ctx, overviewCacheKey).Err()
}
