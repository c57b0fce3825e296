package service

import (
	"context"
	"errors"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
)

// Base stubs satisfying the repository interfaces; tests embed these and
// override only what they exercise.

var errStubNotImplemented = errors.New("not implemented in stub")

func ptr[T any](v T) *T { return &v }

type jobRepoStub struct{}

func (jobRepoStub) Create(context.Context, *model.CreateJobRequest) (*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) GetByID(context.Context, string) (*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) List(context.Context, model.JobsListOptions) ([]*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) Update(context.Context, string, model.UpdateJobRequest) (*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) Delete(context.Context, string) (bool, error) {
	return false, errStubNotImplemented
}

func (jobRepoStub) SetSiteState(context.Context, string, string, model.SiteState) (*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) TouchRPO(context.Context, string, string, time.Time) (*model.Job, error) {
	return nil, errStubNotImplemented
}

func (jobRepoStub) Snapshot(context.Context) ([]model.Job, error) {
	return nil, errStubNotImplemented
}

type companyRepoStub struct{}

func (companyRepoStub) Create(context.Context, *model.CreateCompanyRequest) (*model.Company, error) {
	return nil, errStubNotImplemented
}

func (companyRepoStub) GetByID(context.Context, string) (*model.Company, error) {
	return nil, errStubNotImplemented
}

func (companyRepoStub) List(context.Context, model.CompaniesListOptions) ([]*model.Company, error) {
	return nil, errStubNotImplemented
}

func (companyRepoStub) Update(context.Context, string, model.UpdateCompanyRequest) (*model.Company, error) {
	return nil, errStubNotImplemented
}

func (companyRepoStub) Delete(context.Context, string) (bool, error) {
	return false, errStubNotImplemented
}

func (companyRepoStub) Snapshot(context.Context) ([]model.Company, error) {
	return nil, errStubNotImplemented
}
