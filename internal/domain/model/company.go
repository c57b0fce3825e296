// Package model defines the core data types for the RPO console: companies,
// jobs, and the per-site listing states the work-queue engine consumes.
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCompanyNameLen = 255

// Company represents a client company.
type Company struct {
	ID                 string    `json:"id"                            db:"id"`
	CompanyName        string    `json:"company_name"                  db:"company_name"`
	Phone              *string   `json:"phone,omitempty"               db:"phone"`
	CompanyEmail       *string   `json:"company_email,omitempty"       db:"company_email"`
	HQAddress          *string   `json:"hq_address,omitempty"          db:"hq_address"`
	RepresentativeName *string   `json:"representative_name,omitempty" db:"representative_name"`
	CreatedAt          time.Time `json:"created_at"                    db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"                    db:"updated_at"`
}

// CreateCompanyRequest represents a request to create a company.
type CreateCompanyRequest struct {
	CompanyName        string  `json:"company_name"`
	Phone              *string `json:"phone,omitempty"`
	CompanyEmail       *string `json:"company_email,omitempty"`
	HQAddress          *string `json:"hq_address,omitempty"`
	RepresentativeName *string `json:"representative_name,omitempty"`
}

// Validate validates the CreateCompanyRequest fields.
func (r *CreateCompanyRequest) Validate() error {
	name := strings.TrimSpace(r.CompanyName)
	if name == "" {
		return errors.New("company name is required")
	}
	if utf8.RuneCountInString(name) > maxCompanyNameLen {
		return errors.New("company name is too long")
	}
	return nil
}

// UpdateCompanyRequest represents a partial update to a company. Nil fields
// are left unchanged.
type UpdateCompanyRequest struct {
	CompanyName        *string `json:"company_name,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	CompanyEmail       *string `json:"company_email,omitempty"`
	HQAddress          *string `json:"hq_address,omitempty"`
	RepresentativeName *string `json:"representative_name,omitempty"`
}

// Validate validates the UpdateCompanyRequest fields.
func (r *UpdateCompanyRequest) Validate() error {
	if r.CompanyName != nil {
		name := strings.TrimSpace(*r.CompanyName)
		if name == "" {
			return errors.New("company name cannot be blank")
		}
		if utf8.RuneCountInString(name) > maxCompanyNameLen {
			return errors.New("company name is too long")
		}
	}
	return nil
}

// CompaniesListOptions controls paging and filtering for listing companies.
// Q matches company_name via ILIKE substring.
type CompaniesListOptions struct {
	Limit  int
	Offset int
	Q      *string
}
