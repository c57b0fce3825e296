package httpx

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rpoworks/console/internal/workqueue"
)

// Query parameter names for the work-queue endpoints.
const (
	paramCompany = "q"
	paramSite    = "site"
	paramStatus  = "status"
	paramStale   = "stale"
	paramRPO     = "rpo"
	paramNow     = "now"
	paramDefault = "default"
)

// ParseQueueFilters builds engine filters from URL query parameters.
//
// With ?default=1, or when no filter parameter is present at all, the
// engine's default preset applies. Otherwise filtering starts unrestricted
// and each given parameter narrows it: q (company substring), site and
// status (repeatable), stale (all|3plus|7plus), rpo (all|7plus_untouched).
// Unknown status or threshold values are an error.
func ParseQueueFilters(q url.Values) (workqueue.Filters, error) {
	if q.Get(paramDefault) == "1" || !hasFilterParams(q) {
		return workqueue.DefaultFilters(), nil
	}

	f := workqueue.Filters{
		QCompany:       q.Get(paramCompany),
		Sites:          cleanValues(q[paramSite]),
		StaleThreshold: workqueue.StaleAll,
		RPOThreshold:   workqueue.RPOAll,
	}

	for _, raw := range cleanValues(q[paramStatus]) {
		status := workqueue.QueueStatus(raw)
		if !status.Valid() {
			return workqueue.Filters{}, fmt.Errorf("unknown status %q", raw)
		}
		f.Statuses = append(f.Statuses, status)
	}

	if raw := strings.TrimSpace(q.Get(paramStale)); raw != "" {
		threshold := workqueue.StaleThreshold(strings.ToUpper(raw))
		if !threshold.Valid() {
			return workqueue.Filters{}, fmt.Errorf("unknown stale threshold %q", raw)
		}
		f.StaleThreshold = threshold
	}

	if raw := strings.TrimSpace(q.Get(paramRPO)); raw != "" {
		threshold := workqueue.RPOThreshold(strings.ToUpper(raw))
		if !threshold.Valid() {
			return workqueue.Filters{}, fmt.Errorf("unknown rpo threshold %q", raw)
		}
		f.RPOThreshold = threshold
	}

	return f, nil
}

// ParseNowParam reads the optional ?now= override used for deterministic
// reads. A zero time means "use the server clock".
func ParseNowParam(q url.Values) (time.Time, error) {
	raw := strings.TrimSpace(q.Get(paramNow))
	if raw == "" {
		return time.Time{}, nil
	}
	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid now parameter %q", raw)
	}
	return now, nil
}

func hasFilterParams(q url.Values) bool {
	for _, key := range []string{paramCompany, paramSite, paramStatus, paramStale, paramRPO} {
		if _, ok := q[key]; ok {
			return true
		}
	}
	return false
}

func cleanValues(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
