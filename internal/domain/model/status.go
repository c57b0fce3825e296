package model

// SiteStatus represents the lifecycle status of one job listing on one
// advertising site. The set is closed; extending it requires updating the
// work-queue actionable subset and sort priority together.
//
// The type deliberately does not reject unknown strings at decode time:
// stored data is read permissively and validated only at the request
// boundary, so one corrupt entry can never break a whole snapshot read.
type SiteStatus string

const (
	// SiteStatusPreparing indicates the listing is being drafted.
	SiteStatusPreparing SiteStatus = "準備中"
	// SiteStatusLive indicates the listing is published and running.
	SiteStatusLive SiteStatus = "掲載中"
	// SiteStatusAwaitingMaterials indicates the client still owes materials.
	SiteStatusAwaitingMaterials SiteStatus = "資料待ち"
	// SiteStatusPlatformReview indicates the advertising site is reviewing the listing.
	SiteStatusPlatformReview SiteStatus = "媒体審査中"
	// SiteStatusRejected indicates the advertising site rejected the listing.
	SiteStatusRejected SiteStatus = "NG"
	// SiteStatusPaused indicates the listing is suspended.
	SiteStatusPaused SiteStatus = "停止中"
)

// Valid returns true if the SiteStatus is one of the six known statuses.
func (s SiteStatus) Valid() bool {
	switch s {
	case SiteStatusPreparing, SiteStatusLive, SiteStatusAwaitingMaterials,
		SiteStatusPlatformReview, SiteStatusRejected, SiteStatusPaused:
		return true
	default:
		return false
	}
}

// SiteState is the per-(job, site) record kept inside a job's site-status
// map. UpdatedAt is the authoritative "last touched by anyone" time for the
// listing; RPOLastTouchedAt tracks the last deliberate operations-staff touch
// and is tracked separately on purpose. Both are ISO-8601 strings as stored;
// the work-queue engine owns parsing and treats failures as unknown age.
type SiteState struct {
	Status           SiteStatus `json:"status"`
	UpdatedAt        string     `json:"updatedAt"`
	Note             string     `json:"note,omitempty"`
	RPOLastTouchedAt string     `json:"rpoLastTouchedAt,omitempty"`
}
