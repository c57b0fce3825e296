package httpx

import (
	"log/slog"
	"net/http"

	"github.com/rpoworks/console/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Companies *service.CompanyService
	Jobs      *service.JobService
	WorkQueue *service.WorkQueueService
	Logger    *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	companyHandlers := &CompanyHandlers{Svc: services.Companies}
	jobHandlers := &JobHandlers{Svc: services.Jobs}
	queueHandlers := &WorkQueueHandlers{Svc: services.WorkQueue}

	registerCRUD(mux, crudRoutes{
		Base:    "/api/companies",
		Create:  companyHandlers.Create,
		List:    companyHandlers.List,
		GetByID: companyHandlers.Get,
		Update:  companyHandlers.Update,
		Delete:  companyHandlers.Delete,
	})
	registerCRUD(mux, crudRoutes{
		Base:    "/api/jobs",
		Create:  jobHandlers.Create,
		List:    jobHandlers.List,
		GetByID: jobHandlers.Get,
		Update:  jobHandlers.Update,
		Delete:  jobHandlers.Delete,
	})
	mux.HandleFunc("PUT /api/jobs/{id}/sites/{siteKey}", jobHandlers.SetSiteState)
	mux.HandleFunc("POST /api/jobs/{id}/sites/{siteKey}/touch", jobHandlers.TouchRPO)

	mux.HandleFunc("GET /api/work-queue", queueHandlers.List)
	mux.HandleFunc("GET /api/work-queue/analytics", queueHandlers.Analytics)

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

// crudRoutes groups the standard handlers for a resource base path.
type crudRoutes struct {
	Base    string
	Create  http.HandlerFunc
	List    http.HandlerFunc
	GetByID http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty")
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base)
	}

	mux.HandleFunc("POST "+cfg.Base, cfg.Create)
	mux.HandleFunc("GET "+cfg.Base, cfg.List)
	mux.HandleFunc("GET "+cfg.Base+"/{id}", cfg.GetByID)
	mux.HandleFunc("PUT "+cfg.Base+"/{id}", cfg.Update)
	mux.HandleFunc("DELETE "+cfg.Base+"/{id}", cfg.Delete)
}
