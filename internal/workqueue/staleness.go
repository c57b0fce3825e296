package workqueue

import "time"

// Accepted timestamp layouts, most specific first. Layouts without a zone are
// interpreted in the reference time's location.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DayAge returns the age of the ISO-8601 timestamp in whole local calendar
// days relative to now, or nil when the timestamp is empty or unparseable.
// Both instants are truncated to local midnight in now's location before
// differencing, so time-of-day never matters and the result is never
// negative: anything from today (or later today) is 0 days old.
//
// This is the single staleness primitive; staleDays and rpoTouchedDays are
// both computed through it and no other component derives day ages.
func DayAge(now time.Time, iso string) *int {
	t, ok := parseISO(iso, now.Location())
	if !ok {
		return nil
	}

	days := int(localDay(now).Sub(localDay(t.In(now.Location()))).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// localDay maps an instant to its calendar date, re-anchored at UTC midnight.
// Differencing two such values is always an exact multiple of 24h, which
// keeps day arithmetic immune to DST transitions in the local zone.
func localDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseISO(iso string, loc *time.Location) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, iso, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
