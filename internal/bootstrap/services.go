package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rpoworks/console/config"
	"github.com/rpoworks/console/internal/data"
	"github.com/rpoworks/console/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Companies *service.CompanyService
	Jobs      *service.JobService
	WorkQueue *service.WorkQueueService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// InitServices builds the repository and service graph.
func InitServices(deps ServiceDeps) ServiceContainer {
	companyRepo := data.NewCompanyRepo(deps.DB)
	jobRepo := data.NewJobRepo(deps.DB)

	var cache *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	workQueueOpts := service.WorkQueueServiceOptions{
		Jobs:      jobRepo,
		Companies: companyRepo,
		Logger:    deps.Logger,
	}
	if cache != nil {
		workQueueOpts.Cache = cache
		if deps.Config != nil {
			workQueueOpts.CacheTTL = deps.Config.Cache.AnalyticsTTL
		}
	}

	return ServiceContainer{
		Companies: service.NewCompanyService(service.CompanyServiceOptions{Companies: companyRepo}),
		Jobs:      service.NewJobService(service.JobServiceOptions{Jobs: jobRepo}),
		WorkQueue: service.NewWorkQueueService(workQueueOpts),
	}
}
