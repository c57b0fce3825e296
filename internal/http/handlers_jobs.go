package httpx

import (
	"errors"
	"net/http"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
	"github.com/rpoworks/console/internal/service"
)

// JobHandlers provides HTTP handlers for job CRUD and per-site listing state.
type JobHandlers struct {
	Svc *service.JobService
}

// Create handles POST /api/jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// List handles GET /api/jobs.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePageOptions(r)
	jobs, err := h.Svc.List(r.Context(), model.JobsListOptions{
		Limit:     limit,
		Offset:    offset,
		CompanyID: optionalQuery(r, "company_id"),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("job id is required")})
		return
	}

	job, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Update handles PUT /api/jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("job not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSiteState handles PUT /api/jobs/{id}/sites/{siteKey}.
func (h *JobHandlers) SetSiteState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	siteKey := r.PathValue("siteKey")

	var req model.SetSiteStateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.SetSiteState(r.Context(), id, siteKey, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// touchRPORequest is the optional body for TouchRPO. An absent body or zero
// at means "now".
type touchRPORequest struct {
	At time.Time `json:"at,omitzero"`
}

// TouchRPO handles POST /api/jobs/{id}/sites/{siteKey}/touch.
func (h *JobHandlers) TouchRPO(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	siteKey := r.PathValue("siteKey")

	var req touchRPORequest
	if r.Body != nil && r.ContentLength != 0 {
		if !DecodeJSON(w, r, &req) {
			return
		}
	}

	job, err := h.Svc.TouchRPO(r.Context(), id, siteKey, req.At)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}
