package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rpoworks/console/internal/core"
	"github.com/rpoworks/console/internal/data"
	"github.com/rpoworks/console/internal/domain/model"
	"github.com/rpoworks/console/internal/workqueue"
)

const defaultAnalyticsCacheTTL = 30 * time.Second

// WorkQueueServiceOptions groups dependencies for WorkQueueService.
type WorkQueueServiceOptions struct {
	Jobs      core.JobRepository
	Companies core.CompanyRepository
	// Cache is optional; when nil, analytics are recomputed on every call.
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Clock    data.Clock
	Logger   *slog.Logger
}

// WorkQueueService is the read path over the work-queue engine: it loads the
// snapshot, derives rows, and serves the analytics aggregation with a
// read-through cache. It holds no mutable state and is safe for concurrent
// use.
type WorkQueueService struct {
	jobs      core.JobRepository
	companies core.CompanyRepository
	cache     core.CacheRepository
	cacheTTL  time.Duration
	clock     data.Clock
	logger    *slog.Logger
}

// NewWorkQueueService constructs a new WorkQueueService.
func NewWorkQueueService(opts WorkQueueServiceOptions) *WorkQueueService {
	clock := opts.Clock
	if clock == nil {
		clock = data.SystemClock{}
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultAnalyticsCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkQueueService{
		jobs:      opts.Jobs,
		companies: opts.Companies,
		cache:     opts.Cache,
		cacheTTL:  ttl,
		clock:     clock,
		logger:    logger.With("component", "workqueue"),
	}
}

// List builds the sorted work queue from the current snapshot and applies
// the given filters. A zero now means the service clock's current time.
func (s *WorkQueueService) List(ctx context.Context, filters workqueue.Filters, now time.Time) ([]workqueue.Row, error) {
	jobs, companies, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = s.clock.Now()
	}

	rows := workqueue.BuildRows(jobs, companies, now)
	return workqueue.Apply(rows, filters), nil
}

// Analytics aggregates the unfiltered queue. Results for the service clock's
// "now" are cached briefly; an explicit now bypasses the cache so
// deterministic reads stay exact. Cache failures degrade to recomputation.
func (s *WorkQueueService) Analytics(ctx context.Context, opts workqueue.AnalyticsOptions, now time.Time) (workqueue.Analytics, error) {
	cacheable := now.IsZero() && s.cache != nil
	key := analyticsCacheKey(opts)

	if cacheable {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "analytics cache read failed", "error", err)
		} else if cached != nil {
			var out workqueue.Analytics
			if err := json.Unmarshal(cached, &out); err == nil {
				return out, nil
			}
			s.logger.WarnContext(ctx, "analytics cache entry corrupt, recomputing", "key", key)
		}
	}

	jobs, companies, err := s.snapshot(ctx)
	if err != nil {
		return workqueue.Analytics{}, err
	}
	if now.IsZero() {
		now = s.clock.Now()
	}

	out := workqueue.BuildAnalytics(jobs, companies, now, opts)

	if cacheable {
		if encoded, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
				s.logger.WarnContext(ctx, "analytics cache write failed", "error", err)
			}
		}
	}

	return out, nil
}

// snapshot loads jobs and companies concurrently. Both lists are fresh
// allocations owned by the caller, which keeps single-call immutability.
func (s *WorkQueueService) snapshot(ctx context.Context) ([]model.Job, []model.Company, error) {
	var (
		jobs      []model.Job
		companies []model.Company
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobs.Snapshot(gctx)
		if err != nil {
			return fmt.Errorf("load jobs snapshot: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		companies, err = s.companies.Snapshot(gctx)
		if err != nil {
			return fmt.Errorf("load companies snapshot: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return jobs, companies, nil
}

func analyticsCacheKey(opts workqueue.AnalyticsOptions) string {
	return fmt.Sprintf("workqueue:analytics:%d:%d", opts.StaleDaysThreshold, opts.RPOUntouchedDaysThreshold)
}
