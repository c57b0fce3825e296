package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxJobTitleLen = 255
	maxSiteKeyLen  = 100
)

// Job represents a job opening. CompanyID is optional: legacy rows imported
// from the spreadsheet era carry only the denormalized CompanyName. SiteStatus
// maps an advertising-site key (e.g. "Indeed") to that site's listing state
// and is stored as a single JSONB column.
type Job struct {
	ID             string               `json:"id"                        db:"id"`
	CompanyID      *string              `json:"company_id,omitempty"      db:"company_id"`
	CompanyName    string               `json:"company_name"              db:"company_name"`
	JobTitle       string               `json:"job_title"                 db:"job_title"`
	EmploymentType *string              `json:"employment_type,omitempty" db:"employment_type"`
	PayNote        *string              `json:"pay_note,omitempty"        db:"pay_note"`
	Description    *string              `json:"description,omitempty"     db:"description"`
	SiteStatus     map[string]SiteState `json:"site_status,omitempty"     db:"site_status"`
	CreatedAt      time.Time            `json:"created_at"                db:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"                db:"updated_at"`
}

// CreateJobRequest represents a request to create a job.
type CreateJobRequest struct {
	CompanyID      *string              `json:"company_id,omitempty"`
	CompanyName    string               `json:"company_name"`
	JobTitle       string               `json:"job_title"`
	EmploymentType *string              `json:"employment_type,omitempty"`
	PayNote        *string              `json:"pay_note,omitempty"`
	Description    *string              `json:"description,omitempty"`
	SiteStatus     map[string]SiteState `json:"site_status,omitempty"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.JobTitle) == "" {
		return errors.New("job title is required")
	}
	if utf8.RuneCountInString(r.JobTitle) > maxJobTitleLen {
		return errors.New("job title is too long")
	}
	if r.CompanyID == nil && strings.TrimSpace(r.CompanyName) == "" {
		return errors.New("company id or company name is required")
	}
	return validateSiteStatus(r.SiteStatus)
}

// UpdateJobRequest represents a partial update to a job. Nil fields are left
// unchanged; a non-nil SiteStatus replaces the whole map.
type UpdateJobRequest struct {
	CompanyID      *string              `json:"company_id,omitempty"`
	CompanyName    *string              `json:"company_name,omitempty"`
	JobTitle       *string              `json:"job_title,omitempty"`
	EmploymentType *string              `json:"employment_type,omitempty"`
	PayNote        *string              `json:"pay_note,omitempty"`
	Description    *string              `json:"description,omitempty"`
	SiteStatus     map[string]SiteState `json:"site_status,omitempty"`
}

// Validate validates the UpdateJobRequest fields.
func (r *UpdateJobRequest) Validate() error {
	if r.JobTitle != nil {
		if strings.TrimSpace(*r.JobTitle) == "" {
			return errors.New("job title cannot be blank")
		}
		if utf8.RuneCountInString(*r.JobTitle) > maxJobTitleLen {
			return errors.New("job title is too long")
		}
	}
	return validateSiteStatus(r.SiteStatus)
}

// SetSiteStateRequest sets or replaces the state of one (job, site) entry.
type SetSiteStateRequest struct {
	Status           SiteStatus `json:"status"`
	UpdatedAt        string     `json:"updatedAt,omitempty"`
	Note             string     `json:"note,omitempty"`
	RPOLastTouchedAt string     `json:"rpoLastTouchedAt,omitempty"`
}

// Validate validates the SetSiteStateRequest fields.
func (r *SetSiteStateRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("invalid site status")
	}
	return nil
}

func validateSiteStatus(m map[string]SiteState) error {
	for key, state := range m {
		if strings.TrimSpace(key) == "" {
			return errors.New("site key cannot be blank")
		}
		if utf8.RuneCountInString(key) > maxSiteKeyLen {
			return errors.New("site key is too long")
		}
		if !state.Status.Valid() {
			return errors.New("invalid site status for " + key)
		}
	}
	return nil
}

// JobsListOptions controls paging and filtering for listing jobs.
type JobsListOptions struct {
	Limit     int
	Offset    int
	CompanyID *string
}
