// The sweeper is the background companion of the catalog API. On a cron
// schedule it reconciles persisted lifecycle statuses with the clock and
// dispatches a digest of the transitions to the configured webhook
// channels.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	appcfg "fresh-catalog/internal/config"
	"fresh-catalog/internal/handler/http/respond"
	pgRepo "fresh-catalog/internal/infra/adapter/persistence/postgres"
	"fresh-catalog/internal/infra/db"
	"fresh-catalog/internal/infra/notifier"
	workerPkg "fresh-catalog/internal/infra/worker"
	obsmetrics "fresh-catalog/internal/observability/metrics"
	"fresh-catalog/internal/resilience/circuitbreaker"
	"fresh-catalog/internal/usecase/notify"
	"fresh-catalog/internal/usecase/sweep"
)

func main() {
	logger := initLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// File config first, environment overrides on top (fail-open).
	fileConfig, err := appcfg.LoadSweeperConfig(os.Getenv("SWEEPER_CONFIG"))
	if err != nil {
		logger.Error("failed to load sweeper config file", slog.Any("error", err))
		os.Exit(1)
	}
	metrics := workerPkg.NewSweeperMetrics()
	cfg := workerPkg.LoadConfigFromEnv(workerPkg.FromSweeperConfig(fileConfig), logger, metrics)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid sweeper configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("sweeper configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Duration("sweep_timeout", cfg.SweepTimeout),
		slog.Int("health_port", cfg.HealthPort))

	database, err := db.Open(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)
	go reportConnectionStats(ctx, database)

	// The sweep runs behind the same breaker discipline as the API.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	sweepRepo := pgRepo.NewSweepRepo(breaker)

	channels := buildChannels(logger, fileConfig)
	notifyService := notify.NewService(channels, cfg.NotifyMaxConcurrent)
	logger.Info("notification service initialized",
		slog.Int("channels", len(channels)),
		slog.Int("max_concurrent", cfg.NotifyMaxConcurrent))

	startMetricsServer(ctx, logger, notifyService)

	healthAddr := fmt.Sprintf(":%d", cfg.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	sweeper := &sweep.Sweeper{
		Repo:      sweepRepo,
		Notifier:  notifyService,
		BatchSize: cfg.BatchSize,
		Now:       time.Now,
	}

	scheduler, err := startCronSweeper(logger, sweeper, cfg, metrics)
	if err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	healthServer.SetReady(true)
	logger.Info("sweeper started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutdown signal received")
	healthServer.SetReady(false)

	// Let an in-flight sweep finish before the process exits.
	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Warn("notification service shutdown incomplete", slog.Any("error", err))
	}
	logger.Info("sweeper stopped")
}

// initLogger initializes the structured JSON logger.
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

// waitForMigrations blocks until the API has run schema migration.
func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM items LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// reportConnectionStats periodically mirrors the pool state into the
// observability gauges.
func reportConnectionStats(ctx context.Context, db *sql.DB) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := db.Stats()
			obsmetrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}

// buildChannels constructs the enabled notification channels from the
// webhook URLs the YAML file points at.
func buildChannels(logger *slog.Logger, fileConfig *appcfg.SweeperConfig) []notify.Channel {
	var channels []notify.Channel

	if slackCfg := loadSlackConfig(logger, fileConfig.SlackWebhookURL()); slackCfg.Enabled {
		channels = append(channels, notify.NewSlackChannel(slackCfg))
		logger.Info("Slack channel initialized")
	} else {
		logger.Info("Slack channel disabled")
	}

	if discordCfg := loadDiscordConfig(logger, fileConfig.DiscordWebhookURL()); discordCfg.Enabled {
		channels = append(channels, notify.NewDiscordChannel(discordCfg))
		logger.Info("Discord channel initialized")
	} else {
		logger.Info("Discord channel disabled")
	}

	return channels
}

// loadSlackConfig validates the resolved Slack webhook URL. A missing or
// malformed URL disables the channel rather than failing the process.
func loadSlackConfig(logger *slog.Logger, webhookURL string) notifier.SlackConfig {
	if webhookURL == "" {
		return notifier.SlackConfig{Enabled: false}
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		logger.Warn("invalid Slack webhook URL, disabling notifications", slog.Any("error", err))
		return notifier.SlackConfig{Enabled: false}
	}
	if u.Scheme != "https" {
		logger.Warn("Slack webhook URL must use HTTPS, disabling notifications")
		return notifier.SlackConfig{Enabled: false}
	}
	if u.Host != "hooks.slack.com" {
		logger.Warn("invalid Slack webhook host, disabling notifications", slog.String("host", u.Host))
		return notifier.SlackConfig{Enabled: false}
	}
	if !strings.HasPrefix(u.Path, "/services/") {
		logger.Warn("invalid Slack webhook path, disabling notifications", slog.String("path", u.Path))
		return notifier.SlackConfig{Enabled: false}
	}

	return notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    30 * time.Second,
	}
}

// loadDiscordConfig validates the resolved Discord webhook URL.
func loadDiscordConfig(logger *slog.Logger, webhookURL string) notifier.DiscordConfig {
	if webhookURL == "" {
		return notifier.DiscordConfig{Enabled: false}
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		logger.Warn("invalid Discord webhook URL, disabling notifications", slog.Any("error", err))
		return notifier.DiscordConfig{Enabled: false}
	}
	if u.Scheme != "https" {
		logger.Warn("Discord webhook URL must use HTTPS, disabling notifications")
		return notifier.DiscordConfig{Enabled: false}
	}
	if u.Host != "discord.com" && u.Host != "discordapp.com" {
		logger.Warn("invalid Discord webhook host, disabling notifications", slog.String("host", u.Host))
		return notifier.DiscordConfig{Enabled: false}
	}

	return notifier.DiscordConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    30 * time.Second,
	}
}

// startCronSweeper registers the sweep job and starts the scheduler.
// Overlapping runs are skipped: if a sweep outlasts the schedule interval
// the next tick is dropped and counted rather than queued.
func startCronSweeper(logger *slog.Logger, sweeper *sweep.Sweeper, cfg *workerPkg.Config, metrics *workerPkg.SweeperMetrics) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC",
			slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	scheduler := cron.New(cron.WithLocation(loc))

	var running atomic.Bool
	_, err = scheduler.AddFunc(cfg.CronSchedule, func() {
		if !running.CompareAndSwap(false, true) {
			logger.Warn("previous sweep still running, skipping tick")
			metrics.RecordJobSkipped()
			return
		}
		defer running.Store(false)
		runSweepJob(logger, sweeper, cfg, metrics)
	})
	if err != nil {
		return nil, fmt.Errorf("add cron job: %w", err)
	}

	scheduler.Start()
	return scheduler, nil
}

// runSweepJob executes one sweep with a timeout and error handling.
func runSweepJob(logger *slog.Logger, sweeper *sweep.Sweeper, cfg *workerPkg.Config, metrics *workerPkg.SweeperMetrics) {
	logger.Info("sweep started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SweepTimeout)
	defer cancel()

	stats, err := sweeper.Run(ctx)
	if err != nil {
		logger.Error("sweep failed", slog.String("error", respond.SanitizeError(err)))
		return
	}

	metrics.RecordLastSuccess()
	logger.Info("sweep completed",
		slog.Int("scanned", stats.Scanned),
		slog.Int("expired", stats.Expired),
		slog.Int("expiring", stats.Expiring),
		slog.Int("failed", stats.Failed))
}
