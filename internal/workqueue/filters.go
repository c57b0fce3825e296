package workqueue

import "strings"

// StaleThreshold restricts rows by staleness age.
type StaleThreshold string

const (
	// StaleAll passes every row regardless of age.
	StaleAll StaleThreshold = "ALL"
	// Stale3Plus passes rows at least 3 days stale; unknown ages are excluded.
	Stale3Plus StaleThreshold = "3PLUS"
	// Stale7Plus passes rows at least 7 days stale; unknown ages are excluded.
	Stale7Plus StaleThreshold = "7PLUS"
)

// Valid returns true if the StaleThreshold is a known value.
func (t StaleThreshold) Valid() bool {
	switch t {
	case StaleAll, Stale3Plus, Stale7Plus:
		return true
	default:
		return false
	}
}

// minDays returns the minimum staleDays required, or 0 for ALL.
func (t StaleThreshold) minDays() int {
	switch t {
	case Stale3Plus:
		return 3
	case Stale7Plus:
		return 7
	default:
		return 0
	}
}

// RPOThreshold restricts rows by how long operations staff have left them
// untouched.
type RPOThreshold string

const (
	// RPOAll passes every row regardless of RPO touch age.
	RPOAll RPOThreshold = "ALL"
	// RPO7PlusUntouched passes rows untouched by staff for at least 7 days.
	// Rows that have never been RPO-touched carry no age and are excluded.
	RPO7PlusUntouched RPOThreshold = "7PLUS_UNTOUCHED"
)

// Valid returns true if the RPOThreshold is a known value.
func (t RPOThreshold) Valid() bool {
	switch t {
	case RPOAll, RPO7PlusUntouched:
		return true
	default:
		return false
	}
}

// Filters is the per-query value object applied to a built row list. Empty
// Sites/Statuses mean "no restriction".
type Filters struct {
	QCompany       string
	Sites          []string
	Statuses       []QueueStatus
	StaleThreshold StaleThreshold
	RPOThreshold   RPOThreshold
}

// DefaultFilters is the preset applied when the caller chooses nothing:
// staleness 3日以上, all sites, every actionable status except 停止中, no RPO
// restriction.
func DefaultFilters() Filters {
	return Filters{
		QCompany: "",
		Sites:    nil,
		Statuses: []QueueStatus{
			QueueStatusRejected,
			QueueStatusAwaitingMaterials,
			QueueStatusPlatformReview,
		},
		StaleThreshold: Stale3Plus,
		RPOThreshold:   RPOAll,
	}
}

// Apply returns the rows passing every filter rule, preserving their relative
// order. The input slice is never modified. The company match is a
// case-sensitive substring test against the resolved company name.
func Apply(rows []Row, f Filters) []Row {
	q := strings.TrimSpace(f.QCompany)

	siteSet := make(map[string]struct{}, len(f.Sites))
	for _, s := range f.Sites {
		siteSet[s] = struct{}{}
	}
	statusSet := make(map[QueueStatus]struct{}, len(f.Statuses))
	for _, s := range f.Statuses {
		statusSet[s] = struct{}{}
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if q != "" && !strings.Contains(r.CompanyName, q) {
			continue
		}
		if len(siteSet) > 0 {
			if _, ok := siteSet[r.SiteKey]; !ok {
				continue
			}
		}
		if len(statusSet) > 0 {
			if _, ok := statusSet[r.Status]; !ok {
				continue
			}
		}
		if f.StaleThreshold != StaleAll && f.StaleThreshold != "" {
			// Unknown age never passes a staleness restriction.
			if r.StaleDays == nil || *r.StaleDays < f.StaleThreshold.minDays() {
				continue
			}
		}
		if f.RPOThreshold == RPO7PlusUntouched {
			if r.RPOTouchedDays == nil || *r.RPOTouchedDays < 7 {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
