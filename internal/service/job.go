package service

import (
	"context"
	"time"

	"github.com/rpoworks/console/internal/core"
	"github.com/rpoworks/console/internal/data"
	"github.com/rpoworks/console/internal/domain/model"
	apperrors "github.com/rpoworks/console/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs  core.JobRepository
	Clock data.Clock
}

// JobService orchestrates job CRUD and per-site state transitions.
type JobService struct {
	jobs  core.JobRepository
	clock data.Clock
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	clock := opts.Clock
	if clock == nil {
		clock = data.SystemClock{}
	}
	return &JobService{jobs: opts.Jobs, clock: clock}
}

// Create creates a job.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	return s.jobs.Create(ctx, req)
}

// GetByID retrieves a job by ID.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns a page of jobs.
func (s *JobService) List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	return s.jobs.List(ctx, opts)
}

// Update applies a partial update to a job.
func (s *JobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	return s.jobs.Update(ctx, id, req)
}

// Delete deletes a job.
func (s *JobService) Delete(ctx context.Context, id string) (bool, error) {
	return s.jobs.Delete(ctx, id)
}

// SetSiteState sets one (job, site) listing state. A request without an
// updatedAt is stamped with the current time, since setting the state *is*
// the media update.
func (s *JobService) SetSiteState(ctx context.Context, jobID, siteKey string, req model.SetSiteStateRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updatedAt := req.UpdatedAt
	if updatedAt == "" {
		updatedAt = s.clock.Now().UTC().Format(time.RFC3339)
	}

	return s.jobs.SetSiteState(ctx, jobID, siteKey, model.SiteState{
		Status:           req.Status,
		UpdatedAt:        updatedAt,
		Note:             req.Note,
		RPOLastTouchedAt: req.RPOLastTouchedAt,
	})
}

// TouchRPO records an operations-staff touch on a (job, site) row. A zero
// time means "now".
func (s *JobService) TouchRPO(ctx context.Context, jobID, siteKey string, at time.Time) (*model.Job, error) {
	if at.IsZero() {
		at = s.clock.Now()
	}
	return s.jobs.TouchRPO(ctx, jobID, siteKey, at)
}
