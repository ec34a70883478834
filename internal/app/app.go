package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/config"
	"github.com/guttosm/salespulse/internal/api"
	"github.com/guttosm/salespulse/internal/export"
	"github.com/guttosm/salespulse/internal/ingestion"
	"github.com/guttosm/salespulse/internal/logger"
	"github.com/guttosm/salespulse/internal/service"
	"github.com/guttosm/salespulse/internal/storage"
)

// NewService wires the dashboard service from cfg.
//
// Responsibilities:
//   - Creates the products API client (SALES_API_URL, SALES_API_TIMEOUT).
//   - Connects to PostgreSQL when POSTGRES_ENABLED is set, otherwise uses a no-op load log.
//   - Sizes the export cache (EXPORT_CACHE_ENTRIES).
//
// Returns:
//   - service.DashboardService: ready to serve requests.
//   - *sql.DB: the open pool, nil when storage is disabled.
//   - error: any initialization error that occurred.
func NewService(cfg config.Config) (service.DashboardService, *sql.DB, error) {
	source := ingestion.NewClient(cfg.SalesAPI.URL, cfg.SalesAPI.Timeout)

	var (
		db   *sql.DB
		repo storage.LoadRepository
	)
	if cfg.Postgres.Enabled {
		// indirection for unit testing
		var err error
		db, err = postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		repo = storage.NewLoadRepository(db)
	} else {
		logger.L().Info().Msg("load log storage disabled")
		repo = storage.NewNoopRepository()
	}

	cache := export.NewCache(cfg.Export.CacheEntries)
	return service.NewDashboardService(source, repo, cache), db, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the dashboard service with NewService().
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	svc, db, err := NewService(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	// Register health and readiness probes
	var ping func() error
	if db != nil {
		ping = db.Ping
	}
	api.NewHealthHandler(ping).Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
	}

	return router, cleanup, nil
}
