package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	pkgcfg "fresh-catalog/internal/pkg/config"
)

// SweeperMetrics provides process-level Prometheus metrics for the
// sweeper. It embeds the standard ConfigMetrics for configuration
// fallback monitoring; sweep outcomes themselves are recorded through
// the shared observability registry.
//
// Sweeper-specific metrics:
//   - sweeper_job_skipped_total: cron ticks skipped because the previous
//     run was still in flight
//   - sweeper_last_success_timestamp: Unix timestamp of the last
//     successful run
type SweeperMetrics struct {
	*pkgcfg.ConfigMetrics

	JobSkippedTotal      prometheus.Counter
	LastSuccessTimestamp prometheus.Gauge
}

// NewSweeperMetrics creates and registers the sweeper process metrics.
func NewSweeperMetrics() *SweeperMetrics {
	return &SweeperMetrics{
		ConfigMetrics: pkgcfg.NewConfigMetrics("sweeper"),

		JobSkippedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sweeper_job_skipped_total",
			Help: "Cron ticks skipped because the previous sweep was still running",
		}),

		LastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "sweeper_last_success_timestamp",
			Help: "Unix timestamp of the last successful sweep run",
		}),
	}
}

// RecordJobSkipped counts a cron tick that found the previous sweep
// still in flight.
func (m *SweeperMetrics) RecordJobSkipped() {
	m.JobSkippedTotal.Inc()
}

// RecordLastSuccess records the current time as the last successful
// sweep completion.
func (m *SweeperMetrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
