package workqueue

import (
	"sort"
	"strings"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
)

// BucketKey identifies one staleness band in the analytics output.
type BucketKey string

const (
	// Bucket0to2 holds rows 0–2 days stale, plus rows with unknown age.
	Bucket0to2 BucketKey = "0-2"
	// Bucket3to6 holds rows 3–6 days stale.
	Bucket3to6 BucketKey = "3-6"
	// Bucket7to13 holds rows 7–13 days stale.
	Bucket7to13 BucketKey = "7-13"
	// Bucket14Plus holds rows 14 or more days stale.
	Bucket14Plus BucketKey = "14+"
)

// KPI holds the headline counts for the whole queue or one site.
type KPI struct {
	Total             int `json:"total"`
	Stale7Plus        int `json:"stale7plus"`
	ConfirmedNeglect  int `json:"confirmed_neglect"`
	MissingNextAction int `json:"missing_next_action"`
}

// SiteBreakdown carries the per-site slice of the same counts.
type SiteBreakdown struct {
	SiteKey           string              `json:"site_key"`
	Total             int                 `json:"total"`
	ByStatus          map[QueueStatus]int `json:"by_status"`
	MissingNextAction int                 `json:"missing_next_action"`
	Stale7Plus        int                 `json:"stale7plus"`
	ConfirmedNeglect  int                 `json:"confirmed_neglect"`
}

// Analytics is the dashboard aggregation over the unfiltered queue.
type Analytics struct {
	KPI          KPI                 `json:"kpi"`
	ByStatus     map[QueueStatus]int `json:"by_status"`
	BySite       []SiteBreakdown     `json:"by_site"`
	StaleBuckets map[BucketKey]int   `json:"stale_buckets"`
}

// AnalyticsOptions sets the KPI thresholds; zero values mean the default of
// 7 days for both.
type AnalyticsOptions struct {
	StaleDaysThreshold        int
	RPOUntouchedDaysThreshold int
}

// BuildAnalytics aggregates the unfiltered work queue for the given snapshot.
// It shares BuildRows with the queue view so staleness is never re-derived,
// and it never fails on malformed per-row data: unknown staleness falls into
// the "0-2" bucket as a defensive default and a row with no RPO-touch age is
// never counted as confirmed neglect, even when stale.
func BuildAnalytics(jobs []model.Job, companies []model.Company, now time.Time, opts AnalyticsOptions) Analytics {
	staleTh := opts.StaleDaysThreshold
	if staleTh <= 0 {
		staleTh = 7
	}
	rpoTh := opts.RPOUntouchedDaysThreshold
	if rpoTh <= 0 {
		rpoTh = 7
	}

	rows := BuildRows(jobs, companies, now)

	out := Analytics{
		ByStatus: emptyStatusCounts(),
		StaleBuckets: map[BucketKey]int{
			Bucket0to2:   0,
			Bucket3to6:   0,
			Bucket7to13:  0,
			Bucket14Plus: 0,
		},
	}

	siteMap := make(map[string]*SiteBreakdown)
	getSite := func(key string) *SiteBreakdown {
		if s, ok := siteMap[key]; ok {
			return s
		}
		s := &SiteBreakdown{SiteKey: key, ByStatus: emptyStatusCounts()}
		siteMap[key] = s
		return s
	}

	for _, r := range rows {
		out.KPI.Total++
		out.ByStatus[r.Status]++

		noteBlank := strings.TrimSpace(r.State.Note) == ""
		if noteBlank {
			out.KPI.MissingNextAction++
		}

		staleDays := 0
		if r.StaleDays != nil {
			staleDays = *r.StaleDays
		}
		out.StaleBuckets[bucketFor(staleDays)]++

		isStale := staleDays >= staleTh
		if isStale {
			out.KPI.Stale7Plus++
		}

		isConfirmed := isStale && r.RPOTouchedDays != nil && *r.RPOTouchedDays >= rpoTh
		if isConfirmed {
			out.KPI.ConfirmedNeglect++
		}

		s := getSite(r.SiteKey)
		s.Total++
		s.ByStatus[r.Status]++
		if noteBlank {
			s.MissingNextAction++
		}
		if isStale {
			s.Stale7Plus++
		}
		if isConfirmed {
			s.ConfirmedNeglect++
		}
	}

	out.BySite = make([]SiteBreakdown, 0, len(siteMap))
	for _, s := range siteMap {
		out.BySite = append(out.BySite, *s)
	}
	sort.Slice(out.BySite, func(i, j int) bool {
		if out.BySite[i].Total != out.BySite[j].Total {
			return out.BySite[i].Total > out.BySite[j].Total
		}
		return out.BySite[i].SiteKey < out.BySite[j].SiteKey
	})

	return out
}

// emptyStatusCounts zero-fills all four statuses so consumers always see
// every key, even when a status has no rows.
func emptyStatusCounts() map[QueueStatus]int {
	counts := make(map[QueueStatus]int, 4)
	for _, s := range Statuses() {
		counts[s] = 0
	}
	return counts
}

func bucketFor(staleDays int) BucketKey {
	switch {
	case staleDays <= 2:
		return Bucket0to2
	case staleDays <= 6:
		return Bucket3to6
	case staleDays <= 13:
		return Bucket7to13
	default:
		return Bucket14Plus
	}
}
