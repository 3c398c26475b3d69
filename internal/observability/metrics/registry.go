// Package metrics provides centralized Prometheus metrics for the lifecycle
// sweeper and other background processes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sweep metrics track lifecycle reclassification runs.
var (
	// SweepRunsTotal counts sweep runs by result ("success" or "failure").
	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sweep_runs_total",
			Help: "Total number of lifecycle sweep runs",
		},
		[]string{"result"},
	)

	// SweepDuration measures the duration of a full sweep run.
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_sweep_duration_seconds",
			Help:    "Time taken for one lifecycle sweep run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// ItemsReclassifiedTotal counts items whose persisted status snapshot was
	// refreshed during a sweep, by the status they transitioned into.
	ItemsReclassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_items_reclassified_total",
			Help: "Items whose lifecycle status was refreshed by the sweeper",
		},
		[]string{"to_status"},
	)

	// SweepErrorsTotal counts errors during sweeping by type.
	SweepErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sweep_errors_total",
			Help: "Total number of sweep errors",
		},
		[]string{"error_type"},
	)
)

// Notification metrics track expiry alert delivery.
var (
	// NotificationsSentTotal counts expiry notifications by channel and result.
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_notifications_sent_total",
			Help: "Total number of expiry notifications sent",
		},
		[]string{"channel", "result"},
	)

	// NotificationDuration measures the time to deliver a notification.
	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_notification_duration_seconds",
			Help:    "Time taken to deliver an expiry notification",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
		[]string{"channel"},
	)
)

// Database metrics for background processes. The sweeper prefix keeps these
// series separable from the API server's request metrics.
var (
	// SweeperDBQueryDuration measures database query duration in the sweeper.
	SweeperDBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_sweeper_db_query_duration_seconds",
			Help:    "Database query duration in the sweeper",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks in-use database connections.
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordOperationDuration records the duration of a named database operation.
func RecordOperationDuration(operation string, duration time.Duration) {
	SweeperDBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
