// Package core declares the repository and cache interfaces wired between
// the data and service layers.
package core

import (
	"context"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
)

// CompanyRepository provides persistence for client companies.
type CompanyRepository interface {
	Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context, opts model.CompaniesListOptions) ([]*model.Company, error)
	Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Snapshot returns every company, for one work-queue derivation.
	Snapshot(ctx context.Context) ([]model.Company, error)
}

// JobRepository provides persistence for job openings and their per-site
// listing states.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error)
	Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
	// SetSiteState sets or replaces one (job, site) entry.
	SetSiteState(ctx context.Context, jobID, siteKey string, state model.SiteState) (*model.Job, error)
	// TouchRPO stamps rpoLastTouchedAt on an existing (job, site) entry.
	TouchRPO(ctx context.Context, jobID, siteKey string, at time.Time) (*model.Job, error)
	// Snapshot returns every job, for one work-queue derivation.
	Snapshot(ctx context.Context) ([]model.Job, error)
}

// CacheRepository provides byte-level caching with TTLs. A Get miss returns
// (nil, nil).
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}
