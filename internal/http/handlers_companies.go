// Package httpx provides the JSON API handlers for the RPO console.
package httpx

import (
	"errors"
	"net/http"

	"github.com/rpoworks/console/internal/domain/model"
	"github.com/rpoworks/console/internal/service"
)

// CompanyHandlers provides HTTP handlers for company CRUD.
type CompanyHandlers struct {
	Svc *service.CompanyService
}

// Create handles POST /api/companies.
func (h *CompanyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, company)
}

// List handles GET /api/companies.
func (h *CompanyHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePageOptions(r)
	companies, err := h.Svc.List(r.Context(), model.CompaniesListOptions{
		Limit:  limit,
		Offset: offset,
		Q:      optionalQuery(r, "q"),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, companies)
}

// Get handles GET /api/companies/{id}.
func (h *CompanyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("company id is required")})
		return
	}

	company, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}

// Update handles PUT /api/companies/{id}.
func (h *CompanyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req model.UpdateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}

// Delete handles DELETE /api/companies/{id}.
func (h *CompanyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("company not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
