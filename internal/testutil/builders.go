// Package testutil provides fluent builders for company and job fixtures.
package testutil

import (
	"time"

	"github.com/rpoworks/console/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			CompanyName: "テスト商事",
			JobTitle:    "テスト求人",
		},
	}
}

// WithCompanyID links the job to a company record.
func (b *JobRequestBuilder) WithCompanyID(id string) *JobRequestBuilder {
	b.req.CompanyID = &id
	return b
}

// WithCompanyName sets the denormalized company name.
func (b *JobRequestBuilder) WithCompanyName(name string) *JobRequestBuilder {
	b.req.CompanyName = name
	return b
}

// WithJobTitle sets the job title.
func (b *JobRequestBuilder) WithJobTitle(title string) *JobRequestBuilder {
	b.req.JobTitle = title
	return b
}

// WithSiteState sets one site's listing state.
func (b *JobRequestBuilder) WithSiteState(siteKey string, state model.SiteState) *JobRequestBuilder {
	if b.req.SiteStatus == nil {
		b.req.SiteStatus = map[string]model.SiteState{}
	}
	b.req.SiteStatus[siteKey] = state
	return b
}

// WithSiteUpdatedAgo sets one site's status with an update timestamp the
// given number of days before now.
func (b *JobRequestBuilder) WithSiteUpdatedAgo(siteKey string, status model.SiteStatus, now time.Time, daysAgo int) *JobRequestBuilder {
	return b.WithSiteState(siteKey, model.SiteState{
		Status:    status,
		UpdatedAt: now.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
	})
}

// Build returns the constructed CreateJobRequest.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	return b.req
}

// CompanyRequestBuilder provides a fluent interface for building CreateCompanyRequest objects for testing.
type CompanyRequestBuilder struct {
	req *model.CreateCompanyRequest
}

// NewCompanyRequest creates a new CompanyRequestBuilder with sensible defaults.
func NewCompanyRequest() *CompanyRequestBuilder {
	return &CompanyRequestBuilder{
		req: &model.CreateCompanyRequest{CompanyName: "テスト商事"},
	}
}

// WithName sets the company name.
func (b *CompanyRequestBuilder) WithName(name string) *CompanyRequestBuilder {
	b.req.CompanyName = name
	return b
}

// WithPhone sets the company phone number.
func (b *CompanyRequestBuilder) WithPhone(phone string) *CompanyRequestBuilder {
	b.req.Phone = &phone
	return b
}

// Build returns the constructed CreateCompanyRequest.
func (b *CompanyRequestBuilder) Build() *model.CreateCompanyRequest {
	return b.req
}
