package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
	"github.com/rpoworks/console/internal/testutil"
	"github.com/rpoworks/console/internal/workqueue"
)

// seedQueueJob inserts a job with one actionable site listing updated
// daysAgo days before testNow.
func seedQueueJob(t *testing.T, repo *memJobRepo, company, title string, status model.SiteStatus, daysAgo int) *model.Job {
	t.Helper()
	req := testutil.NewJobRequest().
		WithCompanyName(company).
		WithJobTitle(title).
		WithSiteUpdatedAgo("Indeed", status, testNow, daysAgo).
		Build()
	job, err := repo.Create(t.Context(), req)
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func getQueue(t *testing.T, router http.Handler, query string) queueResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/work-queue"+query, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var out queueResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestWorkQueueListDefaultPreset(t *testing.T) {
	jobs := newMemJobRepo()
	seedQueueJob(t, jobs, "古い商事", "営業", model.SiteStatusRejected, 10)
	seedQueueJob(t, jobs, "新しい商事", "事務", model.SiteStatusRejected, 1) // too fresh for 3PLUS
	seedQueueJob(t, jobs, "停止商事", "経理", model.SiteStatusPaused, 10)   // excluded by preset statuses
	seedQueueJob(t, jobs, "掲載商事", "開発", model.SiteStatusLive, 10)     // not actionable at all
	router := newTestRouter(newMemCompanyRepo(), jobs)

	out := getQueue(t, router, "")

	if out.Count != 1 || len(out.Rows) != 1 {
		t.Fatalf("expected exactly one row, got count=%d rows=%d", out.Count, len(out.Rows))
	}
	row := out.Rows[0]
	if row.CompanyName != "古い商事" {
		t.Errorf("unexpected row company %q", row.CompanyName)
	}
	if row.StaleDays == nil || *row.StaleDays != 10 {
		t.Errorf("unexpected stale days %v", row.StaleDays)
	}
}

func TestWorkQueueListExplicitNow(t *testing.T) {
	jobs := newMemJobRepo()
	seedQueueJob(t, jobs, "ACME", "営業", model.SiteStatusRejected, 10)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	// Pushing now forward 5 days grows every age by 5.
	later := testNow.AddDate(0, 0, 5).Format(time.RFC3339)
	out := getQueue(t, router, "?now="+later)

	if len(out.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(out.Rows))
	}
	if got := out.Rows[0].StaleDays; got == nil || *got != 15 {
		t.Errorf("expected stale days 15, got %v", got)
	}
}

func TestWorkQueueListFilterValidation(t *testing.T) {
	router := newTestRouter(newMemCompanyRepo(), newMemJobRepo())

	for _, query := range []string{"?status=bogus", "?stale=9plus", "?now=tuesday"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/work-queue"+query, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected status %d, got %d", query, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestWorkQueueListEmptySnapshot(t *testing.T) {
	router := newTestRouter(newMemCompanyRepo(), newMemJobRepo())

	out := getQueue(t, router, "")
	if out.Count != 0 {
		t.Errorf("expected zero count, got %d", out.Count)
	}
	if out.Rows == nil {
		t.Error("expected rows to serialize as an empty array, not null")
	}
}

func TestWorkQueueListSnapshotError(t *testing.T) {
	jobs := newMemJobRepo()
	jobs.failWith = errStubBoom
	router := newTestRouter(newMemCompanyRepo(), jobs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/work-queue", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestWorkQueueAnalytics(t *testing.T) {
	jobs := newMemJobRepo()
	seedQueueJob(t, jobs, "A社", "営業", model.SiteStatusRejected, 10)
	seedQueueJob(t, jobs, "B社", "事務", model.SiteStatusAwaitingMaterials, 1)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	rec := httptest.NewRecorder()
	url := fmt.Sprintf("/api/work-queue/analytics?now=%s", testNow.Format(time.RFC3339))
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var out workqueue.Analytics
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.KPI.Total != 2 {
		t.Errorf("expected total 2, got %d", out.KPI.Total)
	}
	if out.KPI.Stale7Plus != 1 {
		t.Errorf("expected one stale7Plus row, got %d", out.KPI.Stale7Plus)
	}
	if out.ByStatus[workqueue.QueueStatusRejected] != 1 {
		t.Errorf("unexpected byStatus: %v", out.ByStatus)
	}
}

func TestWorkQueueAnalyticsThresholdOverride(t *testing.T) {
	jobs := newMemJobRepo()
	seedQueueJob(t, jobs, "A社", "営業", model.SiteStatusRejected, 5)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	rec := httptest.NewRecorder()
	url := fmt.Sprintf("/api/work-queue/analytics?now=%s&stale_days=3", testNow.Format(time.RFC3339))
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var out workqueue.Analytics
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.KPI.Stale7Plus != 1 {
		t.Errorf("expected the 5-day row to clear the lowered threshold, got %d", out.KPI.Stale7Plus)
	}
}

func TestJobSetSiteState(t *testing.T) {
	jobs := newMemJobRepo()
	job := seedQueueJob(t, jobs, "ACME", "営業", model.SiteStatusRejected, 10)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	req := httptest.NewRequest(http.MethodPut, "/api/jobs/"+job.ID+"/sites/Airwork",
		strings.NewReader(`{"status":"資料待ち"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var updated model.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	state, ok := updated.SiteStatus["Airwork"]
	if !ok {
		t.Fatal("expected Airwork entry")
	}
	if state.Status != model.SiteStatusAwaitingMaterials {
		t.Errorf("unexpected status %q", state.Status)
	}
	// Absent updatedAt is stamped with the server clock.
	if state.UpdatedAt != testNow.Format(time.RFC3339) {
		t.Errorf("expected stamped updatedAt %q, got %q", testNow.Format(time.RFC3339), state.UpdatedAt)
	}
}

func TestJobSetSiteStateInvalidStatus(t *testing.T) {
	jobs := newMemJobRepo()
	job := seedQueueJob(t, jobs, "ACME", "営業", model.SiteStatusRejected, 10)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	req := httptest.NewRequest(http.MethodPut, "/api/jobs/"+job.ID+"/sites/Airwork",
		strings.NewReader(`{"status":"bogus"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestJobTouchRPO(t *testing.T) {
	jobs := newMemJobRepo()
	job := seedQueueJob(t, jobs, "ACME", "営業", model.SiteStatusRejected, 10)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	// No body: touch time defaults to the server clock.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs/"+job.ID+"/sites/Indeed/touch", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var updated model.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := updated.SiteStatus["Indeed"].RPOLastTouchedAt; got != testNow.Format(time.RFC3339) {
		t.Errorf("expected rpoLastTouchedAt %q, got %q", testNow.Format(time.RFC3339), got)
	}
}

func TestJobTouchRPOUnknownSite(t *testing.T) {
	jobs := newMemJobRepo()
	job := seedQueueJob(t, jobs, "ACME", "営業", model.SiteStatusRejected, 10)
	router := newTestRouter(newMemCompanyRepo(), jobs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs/"+job.ID+"/sites/Nope/touch", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
