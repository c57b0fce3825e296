package workqueue

import (
	"sort"
	"strings"
	"time"

	"github.com/rpoworks/console/internal/domain/model"
)

// Placeholders shown when a row has no resolvable company or title.
const (
	placeholderCompanyName = "(未設定)"
	placeholderJobTitle    = "(求人名未設定)"
)

// BuildRows expands the snapshot into work-queue rows: one row per (job,
// site) pair whose status is actionable. Rows for 準備中 and 掲載中 listings
// are never produced. The result is returned already sorted by SortRows.
//
// The inputs are treated as a read-only snapshot; BuildRows never mutates
// them. A nil jobs or companies slice is the same as an empty one.
func BuildRows(jobs []model.Job, companies []model.Company, now time.Time) []Row {
	companyByID := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}

	var rows []Row

	for _, job := range jobs {
		companyName := resolveCompanyName(job, companyByID)

		if len(job.SiteStatus) == 0 {
			continue
		}

		// Site keys in sorted order so that builds from identical input
		// are value-identical, row for row.
		siteKeys := make([]string, 0, len(job.SiteStatus))
		for key := range job.SiteStatus {
			siteKeys = append(siteKeys, key)
		}
		sort.Strings(siteKeys)

		for _, siteKey := range siteKeys {
			state := job.SiteStatus[siteKey]

			status, ok := queueStatusOf(state.Status)
			if !ok {
				continue
			}

			title := job.JobTitle
			if strings.TrimSpace(title) == "" {
				title = placeholderJobTitle
			}

			rows = append(rows, Row{
				CompanyID:        job.CompanyID,
				CompanyName:      companyName,
				JobID:            job.ID,
				JobTitle:         title,
				SiteKey:          siteKey,
				State:            state,
				Status:           status,
				StaleDays:        DayAge(now, state.UpdatedAt),
				RPOTouchedDays:   DayAge(now, state.RPOLastTouchedAt),
				MediaUpdatedAt:   state.UpdatedAt,
				RPOLastTouchedAt: state.RPOLastTouchedAt,
			})
		}
	}

	return SortRows(rows)
}

// resolveCompanyName prefers the linked company record's name, then the
// job's own denormalized name, then the unset placeholder.
func resolveCompanyName(job model.Job, companyByID map[string]model.Company) string {
	if job.CompanyID != nil {
		if c, ok := companyByID[*job.CompanyID]; ok && strings.TrimSpace(c.CompanyName) != "" {
			return c.CompanyName
		}
	}
	if strings.TrimSpace(job.CompanyName) != "" {
		return job.CompanyName
	}
	return placeholderCompanyName
}
