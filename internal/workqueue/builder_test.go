package workqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpoworks/console/internal/domain/model"
)

var buildNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func isoDaysAgo(days int) string {
	return buildNow.AddDate(0, 0, -days).Format(time.RFC3339)
}

func strPtr(s string) *string { return &s }

func TestBuildRowsActionableOnly(t *testing.T) {
	jobs := []model.Job{
		{
			ID:          "j1",
			CompanyName: "Acme",
			JobTitle:    "Clerk",
			SiteStatus: map[string]model.SiteState{
				"Indeed":  {Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(8)},
				"AirWork": {Status: model.SiteStatusLive, UpdatedAt: isoDaysAgo(0)},
				"Engage":  {Status: model.SiteStatusPreparing, UpdatedAt: isoDaysAgo(3)},
			},
		},
	}

	rows := BuildRows(jobs, nil, buildNow)

	require.Len(t, rows, 1)
	assert.Equal(t, "Indeed", rows[0].SiteKey)
	for _, r := range rows {
		assert.True(t, r.Status.Valid(), "row status must be actionable")
	}
}

func TestBuildRowsCompanyNameResolution(t *testing.T) {
	companies := []model.Company{
		{ID: "c1", CompanyName: "株式会社アクメ"},
	}

	tests := []struct {
		name string
		job  model.Job
		want string
	}{
		{
			name: "linked company wins over denormalized name",
			job: model.Job{
				ID:          "j1",
				CompanyID:   strPtr("c1"),
				CompanyName: "stale denormalized name",
			},
			want: "株式会社アクメ",
		},
		{
			name: "unresolvable link falls back to denormalized name",
			job: model.Job{
				ID:          "j2",
				CompanyID:   strPtr("missing"),
				CompanyName: "レガシー商事",
			},
			want: "レガシー商事",
		},
		{
			name: "no link and blank name gives placeholder",
			job: model.Job{
				ID:          "j3",
				CompanyName: "   ",
			},
			want: "(未設定)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.job.JobTitle = "営業"
			tt.job.SiteStatus = map[string]model.SiteState{
				"Indeed": {Status: model.SiteStatusAwaitingMaterials, UpdatedAt: isoDaysAgo(1)},
			}

			rows := BuildRows([]model.Job{tt.job}, companies, buildNow)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].CompanyName)
		})
	}
}

func TestBuildRowsBlankTitlePlaceholder(t *testing.T) {
	jobs := []model.Job{
		{
			ID:          "j1",
			CompanyName: "Acme",
			JobTitle:    "",
			SiteStatus: map[string]model.SiteState{
				"Indeed": {Status: model.SiteStatusPaused, UpdatedAt: isoDaysAgo(2)},
			},
		},
	}

	rows := BuildRows(jobs, nil, buildNow)
	require.Len(t, rows, 1)
	assert.Equal(t, "(求人名未設定)", rows[0].JobTitle)
}

func TestBuildRowsSkipsJobsWithoutSiteStatus(t *testing.T) {
	jobs := []model.Job{
		{ID: "j1", CompanyName: "Acme", JobTitle: "Clerk"},
		{ID: "j2", CompanyName: "Acme", JobTitle: "Driver", SiteStatus: map[string]model.SiteState{}},
	}

	assert.Empty(t, BuildRows(jobs, nil, buildNow))
}

func TestBuildRowsNilSnapshot(t *testing.T) {
	assert.Empty(t, BuildRows(nil, nil, buildNow))
}

func TestBuildRowsComputedAges(t *testing.T) {
	jobs := []model.Job{
		{
			ID:          "j1",
			CompanyName: "Acme",
			JobTitle:    "Clerk",
			SiteStatus: map[string]model.SiteState{
				"Indeed": {
					Status:           model.SiteStatusRejected,
					UpdatedAt:        isoDaysAgo(8),
					RPOLastTouchedAt: isoDaysAgo(3),
				},
				"AirWork": {
					Status:    model.SiteStatusPaused,
					UpdatedAt: "broken",
				},
			},
		},
	}

	rows := BuildRows(jobs, nil, buildNow)
	require.Len(t, rows, 2)

	byKey := make(map[string]Row, len(rows))
	for _, r := range rows {
		byKey[r.SiteKey] = r
	}

	indeed := byKey["Indeed"]
	require.NotNil(t, indeed.StaleDays)
	assert.Equal(t, 8, *indeed.StaleDays)
	require.NotNil(t, indeed.RPOTouchedDays)
	assert.Equal(t, 3, *indeed.RPOTouchedDays)

	airwork := byKey["AirWork"]
	assert.Nil(t, airwork.StaleDays, "unparseable updatedAt must yield unknown age")
	assert.Nil(t, airwork.RPOTouchedDays, "absent rpoLastTouchedAt must yield unknown age")
}

func TestBuildRowsDeterministic(t *testing.T) {
	jobs := []model.Job{
		{
			ID:          "j1",
			CompanyName: "Acme",
			JobTitle:    "Clerk",
			SiteStatus: map[string]model.SiteState{
				"Indeed":  {Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(5)},
				"AirWork": {Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(5)},
				"Engage":  {Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(5)},
				"求人BOX":   {Status: model.SiteStatusPaused, UpdatedAt: isoDaysAgo(5)},
			},
		},
	}

	first := BuildRows(jobs, nil, buildNow)
	second := BuildRows(jobs, nil, buildNow)
	assert.Equal(t, first, second, "two builds from identical input must be value-identical")
}

func TestBuildRowsDoesNotMutateInput(t *testing.T) {
	state := model.SiteState{Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(2), Note: "call them"}
	jobs := []model.Job{
		{
			ID:          "j1",
			CompanyID:   strPtr("c1"),
			CompanyName: "Acme",
			JobTitle:    "Clerk",
			SiteStatus:  map[string]model.SiteState{"Indeed": state},
		},
	}
	companies := []model.Company{{ID: "c1", CompanyName: "Acme Inc"}}

	BuildRows(jobs, companies, buildNow)

	assert.Equal(t, state, jobs[0].SiteStatus["Indeed"])
	assert.Equal(t, "Acme", jobs[0].CompanyName)
	assert.Equal(t, "Acme Inc", companies[0].CompanyName)
}

// The end-to-end scenario: one actionable row survives, the live listing is
// dropped, and the linked company name is resolved.
func TestBuildRowsEndToEnd(t *testing.T) {
	jobs := []model.Job{
		{
			ID:        "j1",
			CompanyID: strPtr("c1"),
			JobTitle:  "Clerk",
			SiteStatus: map[string]model.SiteState{
				"Indeed":  {Status: model.SiteStatusRejected, UpdatedAt: isoDaysAgo(8)},
				"AirWork": {Status: model.SiteStatusLive, UpdatedAt: isoDaysAgo(0)},
			},
		},
	}
	companies := []model.Company{{ID: "c1", CompanyName: "Acme"}}

	rows := BuildRows(jobs, companies, buildNow)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "Acme", row.CompanyName)
	assert.Equal(t, "j1", row.JobID)
	assert.Equal(t, "Indeed", row.SiteKey)
	assert.Equal(t, QueueStatusRejected, row.Status)
	require.NotNil(t, row.StaleDays)
	assert.Equal(t, 8, *row.StaleDays)
}
