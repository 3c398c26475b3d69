package metrics

import "time"

// RecordSweepRun records the outcome and duration of a full sweep run.
func RecordSweepRun(success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	SweepRunsTotal.WithLabelValues(result).Inc()
	SweepDuration.Observe(duration.Seconds())
}

// RecordItemReclassified records one item transitioning into toStatus during
// a sweep.
func RecordItemReclassified(toStatus string) {
	ItemsReclassifiedTotal.WithLabelValues(toStatus).Inc()
}

// RecordSweepError records an error during a sweep run.
// errorType should describe the failing stage (e.g. "fetch", "update").
func RecordSweepError(errorType string) {
	SweepErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordNotification records the delivery attempt of an expiry notification.
func RecordNotification(channel string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	NotificationsSentTotal.WithLabelValues(channel, result).Inc()
	NotificationDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
