package main

//
//  @title           salespulse API
//  @version         1.0
//  @description     Sales dashboard over the labdados products API: filtering, aggregation and table exports.
//  @termsOfService  https://github.com/guttosm/salespulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/salespulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Metric cards and chart data
//
//  @tag.name        records
//  @tag.description Filtered table, filter options and file exports
//
//  @tag.name        loads
//  @tag.description Products API fetch history
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/salespulse/config"
	_ "github.com/guttosm/salespulse/docs" // swagger docs
	"github.com/guttosm/salespulse/internal/app"
	"github.com/guttosm/salespulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// splitColumns parses the comma-separated --columns flag.
func splitColumns(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// main is the entry point of the salespulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API serving the dashboard, table and exports.
//   - export: Fetches once and writes tabela.csv and tabela.xlsx to --out.
//
// Flags:
//   - --mode:    Execution mode ("api" or "export"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --region:  Export region (Brasil, Centro-Oeste, Nordeste, Norte, Sudeste, Sul).
//   - --year:    Export purchase year, 0 for all.
//   - --columns: Comma-separated export columns, all when empty.
//   - --out:     Export output directory. Default: ".".
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or export")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	region := flag.String("region", "", "Region for export mode (empty or Brasil for all)")
	year := flag.Int("year", 0, "Purchase year for export mode (0 for all)")
	columns := flag.String("columns", "", "Comma-separated columns for export mode")
	out := flag.String("out", ".", "Output directory for export mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "export":
		logger.L().Info().Str("region", *region).Int("year", *year).Msg("running export")

		svc, db, err := app.NewService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		if db != nil {
			defer func() { _ = db.Close() }()
		}

		exportCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()

		paths, err := runExport(exportCtx, svc, *region, *year, splitColumns(*columns), *out)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Strs("files", paths).Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
