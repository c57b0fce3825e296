// Package devseed populates a development database with sample companies and
// jobs so the work queue has something to show.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpoworks/console/internal/data"
	"github.com/rpoworks/console/internal/domain/model"
	"github.com/rpoworks/console/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB        *sql.DB
	companies *service.CompanyService
	jobs      *service.JobService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	companyRepo := data.NewCompanyRepo(db)
	jobRepo := data.NewJobRepo(db)

	return Services{
		DB:        db,
		companies: service.NewCompanyService(service.CompanyServiceOptions{Companies: companyRepo}),
		jobs:      service.NewJobService(service.JobServiceOptions{Jobs: jobRepo}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent at the company level: an existing company of the same
// name is reused rather than duplicated.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0

	companyIDs := map[string]string{}
	for _, req := range seedCompanies() {
		id, err := ensureCompany(ctx, svcs.companies, req)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed company", "name", req.CompanyName, "error", err)
			}
			failures++
			continue
		}
		companyIDs[req.CompanyName] = id
		if logger != nil {
			logger.InfoContext(ctx, "company ready", "name", req.CompanyName, "id", id)
		}
	}

	now := time.Now().UTC()
	for _, seed := range seedJobs(now) {
		req := seed.req
		if id, ok := companyIDs[seed.companyName]; ok {
			req.CompanyID = &id
		}
		req.CompanyName = seed.companyName

		job, err := svcs.jobs.Create(ctx, &req)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed job", "title", req.JobTitle, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "job created", "title", job.JobTitle, "id", job.ID)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func ensureCompany(ctx context.Context, svc *service.CompanyService, req model.CreateCompanyRequest) (string, error) {
	q := req.CompanyName
	existing, err := svc.List(ctx, model.CompaniesListOptions{Q: &q, Limit: 1})
	if err != nil {
		return "", err
	}
	for _, c := range existing {
		if c.CompanyName == req.CompanyName {
			return c.ID, nil
		}
	}

	created, err := svc.Create(ctx, &req)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func seedCompanies() []model.CreateCompanyRequest {
	phone := "03-1234-5678"
	return []model.CreateCompanyRequest{
		{CompanyName: "株式会社山田工務店", Phone: &phone},
		{CompanyName: "ひまわり介護サービス株式会社"},
		{CompanyName: "東都物流株式会社"},
	}
}

type jobSeed struct {
	companyName string
	req         model.CreateJobRequest
}

// seedJobs returns sample jobs whose site states span the work-queue
// scenarios: fresh, stale, untouched, and non-actionable.
func seedJobs(now time.Time) []jobSeed {
	iso := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
	}

	return []jobSeed{
		{
			companyName: "株式会社山田工務店",
			req: model.CreateJobRequest{
				JobTitle: "現場監督（建築）",
				SiteStatus: map[string]model.SiteState{
					"Indeed": {
						Status:    model.SiteStatusRejected,
						UpdatedAt: iso(10),
						Note:      "写真の差し替えを依頼中",
					},
					"Airwork": {
						Status:    model.SiteStatusLive,
						UpdatedAt: iso(2),
					},
				},
			},
		},
		{
			companyName: "ひまわり介護サービス株式会社",
			req: model.CreateJobRequest{
				JobTitle: "介護スタッフ（夜勤あり）",
				SiteStatus: map[string]model.SiteState{
					"Indeed": {
						Status:           model.SiteStatusAwaitingMaterials,
						UpdatedAt:        iso(5),
						RPOLastTouchedAt: iso(1),
					},
				},
			},
		},
		{
			companyName: "東都物流株式会社",
			req: model.CreateJobRequest{
				JobTitle: "中型トラックドライバー",
				SiteStatus: map[string]model.SiteState{
					"Indeed": {
						Status:    model.SiteStatusPlatformReview,
						UpdatedAt: iso(15),
					},
					"engage": {
						Status:    model.SiteStatusPaused,
						UpdatedAt: iso(30),
						Note:      "採用充足のため一時停止",
					},
				},
			},
		},
		{
			// Denormalized name only, as migrated spreadsheet rows have.
			companyName: "スポット商事",
			req: model.CreateJobRequest{
				JobTitle: "倉庫内軽作業",
				SiteStatus: map[string]model.SiteState{
					"Airwork": {
						Status:    model.SiteStatusPreparing,
						UpdatedAt: iso(0),
					},
				},
			},
		},
	}
}
