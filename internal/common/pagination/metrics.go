package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of page fetch requests.
	// Labels: status (HTTP status code), page_range (page bucket: 0-9, 10-49, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_pagination_requests_total",
			Help: "Total number of page fetch requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// TotalCount tracks the most recent aggregate item count per owner query.
	// This is updated on each COUNT query.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items_total_count",
			Help: "Most recent aggregate item count",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, store, out_of_range)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)

	// SearchUnderfillTotal counts fetches where client-side search filtering
	// left the page with fewer than page_size items while more raw data
	// remained. This quantifies the documented over-fetch trade-off.
	SearchUnderfillTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_pagination_search_underfill_total",
			Help: "Pages under-filled after client-side search filtering",
		},
	)
)

// RecordRequest records a page fetch request metric.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		getPageRangeBucket(page),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// UpdateTotalCount updates the aggregate count gauge.
func UpdateTotalCount(count int64) {
	TotalCount.Set(float64(count))
}

// RecordError records an error metric.
// errorType should be one of: "validation", "store", "out_of_range"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordSearchUnderfill records a page left under-filled by search filtering.
func RecordSearchUnderfill() {
	SearchUnderfillTotal.Inc()
}

// getPageRangeBucket returns the page range bucket for a given page index.
func getPageRangeBucket(page int) string {
	switch {
	case page < 10:
		return "0-9"
	case page < 50:
		return "10-49"
	case page < 100:
		return "50-99"
	default:
		return "100+"
	}
}
