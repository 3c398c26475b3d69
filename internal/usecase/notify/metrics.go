package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch plumbing metrics. Delivery outcomes (sent/failed, duration) are
// recorded through the shared observability registry; these cover the
// cases where a digest never reached a channel at all.
var (
	notificationDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_notifications_dropped_total",
			Help: "Total number of digests dropped before delivery",
		},
		[]string{"channel", "reason"}, // reason: pool_full|circuit_open
	)

	channelsEnabled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_notification_channels_enabled",
			Help: "Number of enabled notification channels",
		},
	)
)

// RecordDropped records a digest that was dropped before reaching a
// channel, either because the worker pool was saturated or the channel's
// circuit breaker was open.
func RecordDropped(channel, reason string) {
	notificationDroppedTotal.WithLabelValues(channel, reason).Inc()
}

// SetChannelsEnabled sets the number of enabled notification channels.
func SetChannelsEnabled(count float64) {
	channelsEnabled.Set(count)
}
