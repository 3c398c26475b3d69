// Package slo tracks service level objective attainment for the catalog API.
//
// Availability and error rate are computed in-process from observed response
// statuses and exported as gauges. Latency percentiles are not computed here;
// they come from the http_request_duration_seconds histogram via
// histogram_quantile at query time.
package slo

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets for the catalog API.
const (
	// AvailabilitySLO is the target uptime percentage (99.9% = 43 minutes downtime per month).
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the 95th percentile latency target in seconds.
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the 99th percentile latency target in seconds.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum acceptable ratio of 5xx responses.
	ErrorRateSLO = 0.001
)

var (
	sloAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Availability ratio (0-1) over the last reporting interval, target: 0.999",
		},
	)

	sloErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Ratio (0-1) of 5xx responses over the last reporting interval, target: 0.001",
		},
	)
)

// Tracker accumulates response outcomes between reports.
type Tracker struct {
	total  atomic.Int64
	errors atomic.Int64
}

var defaultTracker Tracker

// Observe records a single response by status code. Only 5xx statuses count
// against the error budget.
func Observe(status int) {
	defaultTracker.Observe(status)
}

// Report computes the ratios accumulated since the previous call, resets the
// counters and publishes the gauges. Intended to run on a fixed interval.
func Report() {
	defaultTracker.Report()
}

func (t *Tracker) Observe(status int) {
	t.total.Add(1)
	if status >= 500 {
		t.errors.Add(1)
	}
}

func (t *Tracker) Report() {
	total := t.total.Swap(0)
	errors := t.errors.Swap(0)
	if total == 0 {
		// No traffic means no budget spent.
		sloAvailability.Set(1)
		sloErrorRate.Set(0)
		return
	}
	errorRate := float64(errors) / float64(total)
	sloAvailability.Set(1 - errorRate)
	sloErrorRate.Set(errorRate)
}

// Snapshot returns the counts accumulated since the last report without
// resetting them.
func (t *Tracker) Snapshot() (total, errors int64) {
	return t.total.Load(), t.errors.Load()
}
