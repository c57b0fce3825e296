// Package workqueue derives the operations worklist from job and company
// snapshots. It expands each job's per-site status map into one row per
// actionable (job, site) pair, computes staleness ages, and provides the sort
// order, filtering, and aggregation the console renders.
//
// Every function here is pure: the reference time is always an explicit
// parameter, inputs are never mutated, and malformed data degrades to nil
// ages or placeholder strings instead of errors.
package workqueue

import (
	"github.com/rpoworks/console/internal/domain/model"
)

// QueueStatus is the subset of site statuses that require operator attention.
// Only these four statuses generate work-queue rows.
type QueueStatus string

const (
	// QueueStatusRejected ("NG") means the site rejected the listing.
	QueueStatusRejected QueueStatus = "NG"
	// QueueStatusAwaitingMaterials ("資料待ち") means the client owes materials.
	QueueStatusAwaitingMaterials QueueStatus = "資料待ち"
	// QueueStatusPlatformReview ("媒体審査中") means the site is reviewing the listing.
	QueueStatusPlatformReview QueueStatus = "媒体審査中"
	// QueueStatusPaused ("停止中") means the listing is suspended.
	QueueStatusPaused QueueStatus = "停止中"
)

// Statuses returns the actionable statuses in sort-priority order.
func Statuses() []QueueStatus {
	return []QueueStatus{
		QueueStatusRejected,
		QueueStatusAwaitingMaterials,
		QueueStatusPlatformReview,
		QueueStatusPaused,
	}
}

// Valid returns true if the QueueStatus is one of the four actionable statuses.
func (s QueueStatus) Valid() bool {
	switch s {
	case QueueStatusRejected, QueueStatusAwaitingMaterials, QueueStatusPlatformReview, QueueStatusPaused:
		return true
	default:
		return false
	}
}

// Priority returns the sort priority of the status; lower sorts first.
func (s QueueStatus) Priority() int {
	switch s {
	case QueueStatusRejected:
		return 1
	case QueueStatusAwaitingMaterials:
		return 2
	case QueueStatusPlatformReview:
		return 3
	case QueueStatusPaused:
		return 4
	default:
		return 5
	}
}

// queueStatusOf narrows a SiteStatus to the actionable subset.
func queueStatusOf(s model.SiteStatus) (QueueStatus, bool) {
	q := QueueStatus(s)
	if q.Valid() {
		return q, true
	}
	return "", false
}

// Row is one work-queue entry: a single (job, site) pair whose listing needs
// attention. Rows are rebuilt from the snapshot on every read and are never
// persisted. StaleDays and RPOTouchedDays are nil when the source timestamp
// is missing or unparseable; nil means "unknown", not "zero days".
type Row struct {
	CompanyID   *string `json:"company_id,omitempty"`
	CompanyName string  `json:"company_name"`

	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`

	SiteKey string          `json:"site_key"`
	State   model.SiteState `json:"state"`
	Status  QueueStatus     `json:"status"`

	StaleDays      *int `json:"stale_days"`
	RPOTouchedDays *int `json:"rpo_touched_days"`

	MediaUpdatedAt   string `json:"media_updated_at"`
	RPOLastTouchedAt string `json:"rpo_last_touched_at,omitempty"`
}
