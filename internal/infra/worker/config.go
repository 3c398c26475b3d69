// Package worker carries the process-level plumbing for the sweeper
// service: runtime configuration with environment overrides, the health
// check server, and process metrics.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	appcfg "fresh-catalog/internal/config"
	pkgcfg "fresh-catalog/internal/pkg/config"
)

// Config holds the runtime configuration of the sweeper process.
// Values are seeded from the YAML sweeper file and may be overridden per
// deployment through environment variables.
type Config struct {
	// CronSchedule is the cron expression for sweep scheduling.
	// Example: "30 5 * * *" (every day at 5:30)
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// BatchSize bounds one candidate fetch from the store.
	BatchSize int

	// SweepTimeout is the maximum duration of a single sweep run.
	SweepTimeout time.Duration

	// NotifyMaxConcurrent caps concurrent notification deliveries.
	NotifyMaxConcurrent int

	// HealthPort is the port for the health check HTTP server.
	HealthPort int
}

// DefaultConfig returns the production defaults: a daily early-morning
// sweep, moderate batches, and the usual exporter-style health port.
func DefaultConfig() Config {
	return Config{
		CronSchedule:        appcfg.DefaultSweepSchedule,
		Timezone:            appcfg.DefaultSweepTimezone,
		BatchSize:           appcfg.DefaultSweepBatchSize,
		SweepTimeout:        appcfg.DefaultSweepTimeout,
		NotifyMaxConcurrent: 10,
		HealthPort:          9091,
	}
}

// FromSweeperConfig seeds a runtime Config from the loaded YAML file,
// keeping the defaults for knobs the file does not cover.
func FromSweeperConfig(sc *appcfg.SweeperConfig) Config {
	cfg := DefaultConfig()
	cfg.CronSchedule = sc.Sweep.Schedule
	cfg.Timezone = sc.Sweep.Timezone
	cfg.BatchSize = sc.Sweep.BatchSize
	cfg.SweepTimeout = sc.Sweep.Timeout
	return cfg
}

// Validate checks the configuration, collecting all violations.
func (c *Config) Validate() error {
	var errs []error

	if err := pkgcfg.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := pkgcfg.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := pkgcfg.ValidateIntRange(c.BatchSize, 1, 10000); err != nil {
		errs = append(errs, fmt.Errorf("batch size: %w", err))
	}
	if err := pkgcfg.ValidatePositiveDuration(c.SweepTimeout); err != nil {
		errs = append(errs, fmt.Errorf("sweep timeout: %w", err))
	}
	if err := pkgcfg.ValidateIntRange(c.NotifyMaxConcurrent, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("notify max concurrent: %w", err))
	}
	if err := pkgcfg.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv applies environment overrides on top of the base
// configuration with a fail-open strategy: an invalid override keeps the
// base value, logs a warning, and bumps the fallback metrics. The
// returned configuration is always valid when the base was.
//
// Environment variables:
//   - SWEEP_SCHEDULE: Cron expression
//   - SWEEP_TIMEZONE: IANA timezone name
//   - SWEEP_BATCH_SIZE: Integer 1-10000
//   - SWEEP_TIMEOUT: Duration string, e.g. "30m" (1m-4h)
//   - NOTIFY_MAX_CONCURRENT: Integer 1-50
//   - SWEEPER_HEALTH_PORT: Integer 1024-65535
func LoadConfigFromEnv(base Config, logger *slog.Logger, metrics *SweeperMetrics) *Config {
	cfg := base
	fallbackApplied := false

	applyFallback := func(field string, result pkgcfg.ConfigLoadResult) {
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	result := pkgcfg.LoadEnvWithFallback("SWEEP_SCHEDULE", cfg.CronSchedule, pkgcfg.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	if result.FallbackApplied {
		applyFallback("sweep_schedule", result)
	}

	result = pkgcfg.LoadEnvWithFallback("SWEEP_TIMEZONE", cfg.Timezone, pkgcfg.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		applyFallback("sweep_timezone", result)
	}

	result = pkgcfg.LoadEnvInt("SWEEP_BATCH_SIZE", cfg.BatchSize, func(v int) error {
		return pkgcfg.ValidateIntRange(v, 1, 10000)
	})
	cfg.BatchSize = result.Value.(int)
	if result.FallbackApplied {
		applyFallback("sweep_batch_size", result)
	}

	result = pkgcfg.LoadEnvDuration("SWEEP_TIMEOUT", cfg.SweepTimeout, func(d time.Duration) error {
		return pkgcfg.ValidateDuration(d, 1*time.Minute, 4*time.Hour)
	})
	cfg.SweepTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		applyFallback("sweep_timeout", result)
	}

	result = pkgcfg.LoadEnvInt("NOTIFY_MAX_CONCURRENT", cfg.NotifyMaxConcurrent, func(v int) error {
		return pkgcfg.ValidateIntRange(v, 1, 50)
	})
	cfg.NotifyMaxConcurrent = result.Value.(int)
	if result.FallbackApplied {
		applyFallback("notify_max_concurrent", result)
	}

	result = pkgcfg.LoadEnvInt("SWEEPER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return pkgcfg.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		applyFallback("sweeper_health_port", result)
	}

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg
}
