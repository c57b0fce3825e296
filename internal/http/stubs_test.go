package httpx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
	apperrors "github.com/rpoworks/console/internal/errors"
)

// memCompanyRepo is an in-memory CompanyRepository for handler tests.
type memCompanyRepo struct {
	companies map[string]*model.Company
	nextID    int
	failWith  error
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*model.Company{}}
}

func (r *memCompanyRepo) Create(_ context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	r.nextID++
	c := &model.Company{
		ID:          fmt.Sprintf("company-%d", r.nextID),
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.companies[c.ID] = c
	return c, nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.companies[id]
	if !ok {
		return nil, apperrors.NotFoundf("company %s not found", id)
	}
	return c, nil
}

func (r *memCompanyRepo) List(_ context.Context, _ model.CompaniesListOptions) ([]*model.Company, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*model.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanyRepo) Update(_ context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	c, ok := r.companies[id]
	if !ok {
		return nil, apperrors.NotFoundf("company %s not found", id)
	}
	if req.CompanyName != nil {
		c.CompanyName = *req.CompanyName
	}
	return c, nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

func (r *memCompanyRepo) Snapshot(_ context.Context) ([]model.Company, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, nil
}

// memJobRepo is an in-memory JobRepository for handler tests.
type memJobRepo struct {
	jobs     map[string]*model.Job
	nextID   int
	failWith error
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]*model.Job{}}
}

func (r *memJobRepo) Create(_ context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	r.nextID++
	j := &model.Job{
		ID:          fmt.Sprintf("job-%d", r.nextID),
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		SiteStatus:  req.SiteStatus,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.jobs[j.ID] = j
	return j, nil
}

func (r *memJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}
	return j, nil
}

func (r *memJobRepo) List(_ context.Context, _ model.JobsListOptions) ([]*model.Job, error) {
	out := make([]*model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobRepo) Update(_ context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}
	if req.JobTitle != nil {
		j.JobTitle = *req.JobTitle
	}
	if req.SiteStatus != nil {
		j.SiteStatus = req.SiteStatus
	}
	return j, nil
}

func (r *memJobRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.jobs[id]; !ok {
		return false, nil
	}
	delete(r.jobs, id)
	return true, nil
}

func (r *memJobRepo) SetSiteState(_ context.Context, jobID, siteKey string, state model.SiteState) (*model.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	if j.SiteStatus == nil {
		j.SiteStatus = map[string]model.SiteState{}
	}
	j.SiteStatus[siteKey] = state
	return j, nil
}

func (r *memJobRepo) TouchRPO(_ context.Context, jobID, siteKey string, at time.Time) (*model.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	state, ok := j.SiteStatus[siteKey]
	if !ok {
		return nil, apperrors.NotFoundf("site %q not found on job %s", siteKey, jobID)
	}
	state.RPOLastTouchedAt = at.UTC().Format(time.RFC3339)
	j.SiteStatus[siteKey] = state
	return j, nil
}

func (r *memJobRepo) Snapshot(_ context.Context) ([]model.Job, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

var errStubBoom = errors.New("boom")
