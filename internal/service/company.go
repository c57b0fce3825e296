// Package service orchestrates repository access for the HTTP layer and
// hosts the work-queue read path.
package service

import (
	"context"

	"github.com/rpoworks/console/internal/core"
	"github.com/rpoworks/console/internal/domain/model"
)

// CompanyServiceOptions groups dependencies for CompanyService.
type CompanyServiceOptions struct {
	Companies core.CompanyRepository
}

// CompanyService orchestrates company CRUD.
type CompanyService struct {
	companies core.CompanyRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(opts CompanyServiceOptions) *CompanyService {
	return &CompanyService{companies: opts.Companies}
}

// Create creates a company.
func (s *CompanyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	return s.companies.Create(ctx, req)
}

// GetByID retrieves a company by ID.
func (s *CompanyService) GetByID(ctx context.Context, id string) (*model.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// List returns a page of companies.
func (s *CompanyService) List(ctx context.Context, opts model.CompaniesListOptions) ([]*model.Company, error) {
	return s.companies.List(ctx, opts)
}

// Update applies a partial update to a company.
func (s *CompanyService) Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error) {
	return s.companies.Update(ctx, id, req)
}

// Delete deletes a company. Jobs linked to it keep their denormalized name.
func (s *CompanyService) Delete(ctx context.Context, id string) (bool, error) {
	return s.companies.Delete(ctx, id)
}
