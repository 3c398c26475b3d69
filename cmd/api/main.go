package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"fresh-catalog/internal/common/pagination"
	pgRepo "fresh-catalog/internal/infra/adapter/persistence/postgres"
	"fresh-catalog/internal/infra/db"
	obsmetrics "fresh-catalog/internal/observability/metrics"
	"fresh-catalog/internal/observability/slo"
	"fresh-catalog/internal/observability/tracing"
	pkgcfg "fresh-catalog/internal/pkg/config"
	"fresh-catalog/internal/resilience/circuitbreaker"

	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"

	hhttp "fresh-catalog/internal/handler/http"
	hitem "fresh-catalog/internal/handler/http/item"
	"fresh-catalog/internal/handler/http/requestid"

	_ "fresh-catalog/docs" // swagger docs
)

// @title           Fresh Catalog API
// @version         1.0
// @description     Perishable-goods catalog manager for a multi-tenant marketplace.
// @description     Keyset-paginated item queries, expiry lifecycle classification and catalog writes.

// @contact.name   API Support
// @contact.url    https://github.com/fresh-catalog/fresh-catalog
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database)

	runServer(ctx, logger, components, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	database, err := db.Open(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds the wired handler plus the pieces main needs for
// lifecycle management after setup.
type ServerComponents struct {
	Handler  http.Handler
	Sessions *session.Registry
}

// setupServer wires repositories, the catalog service and the session
// registry, then builds the full route and middleware stack.
func setupServer(logger *slog.Logger, database *sql.DB) *ServerComponents {
	// All catalog queries go through the circuit breaker so a struggling
	// database sheds load instead of stacking up timeouts.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	svc := &catUC.Service{
		Repo:          pgRepo.NewItemRepo(breaker),
		PaginationCfg: pagination.LoadFromEnv(),
		Now:           time.Now,
	}

	sessions := session.NewRegistry(loadSessionTTL(logger))

	go reportConnectionStats(database, logger)
	go reportSLO()

	mux := setupRoutes(database, svc, sessions, logger)
	handler := applyMiddleware(logger, mux)

	return &ServerComponents{
		Handler:  handler,
		Sessions: sessions,
	}
}

// loadSessionTTL reads the cursor ledger TTL from the environment,
// falling back to the registry default on bad values.
func loadSessionTTL(logger *slog.Logger) time.Duration {
	result := pkgcfg.LoadEnvDuration("SESSION_TTL", session.DefaultLedgerTTL, pkgcfg.ValidatePositiveDuration)
	for _, warning := range result.Warnings {
		logger.Warn("session ttl configuration", slog.String("detail", warning))
	}
	return result.Value.(time.Duration)
}

// reportConnectionStats periodically exports database pool gauges.
func reportConnectionStats(database *sql.DB, logger *slog.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := database.Stats()
		obsmetrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		logger.Debug("db pool stats",
			slog.Int("in_use", stats.InUse),
			slog.Int("idle", stats.Idle))
	}
}

// reportSLO publishes availability and error-rate gauges once a minute.
func reportSLO() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		slo.Report()
	}
}

// setupRoutes registers all HTTP routes.
func setupRoutes(database *sql.DB, svc *catUC.Service, sessions *session.Registry, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	hitem.Register(mux, svc, sessions, svc.PaginationCfg, logger)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): request ID, rate limit, recovery, logging,
// body limit, validation, tracing, metrics, timeout.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	limit := pkgcfg.LoadEnvInt("API_RATE_LIMIT", 100, func(v int) error {
		return pkgcfg.ValidateIntRange(v, 1, 100000)
	})
	window := pkgcfg.LoadEnvDuration("API_RATE_WINDOW", time.Minute, pkgcfg.ValidatePositiveDuration)
	timeout := pkgcfg.LoadEnvDuration("API_REQUEST_TIMEOUT", 30*time.Second, pkgcfg.ValidatePositiveDuration)
	for _, warning := range append(append(limit.Warnings, window.Warnings...), timeout.Warnings...) {
		logger.Warn("middleware configuration", slog.String("detail", warning))
	}

	rateLimiter := hhttp.NewRateLimiter(limit.Value.(int), window.Value.(time.Duration))
	logger.Info("rate limiting initialized",
		slog.Int("limit", limit.Value.(int)),
		slog.Duration("window", window.Value.(time.Duration)))

	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.Timeout(timeout.Value.(time.Duration))(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(ctx context.Context, logger *slog.Logger, components *ServerComponents, version string) {
	srv := &http.Server{
		Addr:              ":8080",
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...",
		slog.Int("open_sessions", components.Sessions.Len()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
