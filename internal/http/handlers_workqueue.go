package httpx

import (
	"net/http"

	"github.com/rpoworks/console/internal/service"
	"github.com/rpoworks/console/internal/workqueue"
)

// WorkQueueHandlers serves the work-queue read endpoints.
type WorkQueueHandlers struct {
	Svc *service.WorkQueueService
}

// queueResponse is the List payload. Count is the post-filter row count so
// clients do not have to re-count.
type queueResponse struct {
	Rows  []workqueue.Row `json:"rows"`
	Count int             `json:"count"`
}

// List handles GET /api/work-queue.
func (h *WorkQueueHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := ParseQueueFilters(q)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
		return
	}
	now, err := ParseNowParam(q)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
		return
	}

	rows, err := h.Svc.List(r.Context(), filters, now)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if rows == nil {
		rows = []workqueue.Row{}
	}
	WriteJSON(w, http.StatusOK, queueResponse{Rows: rows, Count: len(rows)})
}

// Analytics handles GET /api/work-queue/analytics. Thresholds default to 7
// days; stale_days and rpo_days override them.
func (h *WorkQueueHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	now, err := ParseNowParam(q)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
		return
	}

	opts := workqueue.AnalyticsOptions{
		StaleDaysThreshold:        parseIntQuery(r, "stale_days", 0),
		RPOUntouchedDaysThreshold: parseIntQuery(r, "rpo_days", 0),
	}

	out, err := h.Svc.Analytics(r.Context(), opts, now)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}
