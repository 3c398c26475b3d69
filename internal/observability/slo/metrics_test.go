package slo

import (
	"testing"

	io_prometheus_client "github.com/prometheus/client_model/go"
)

/* ───────── targets ───────── */

func TestSLOConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"AvailabilitySLO", AvailabilitySLO, 99.9},
		{"LatencyP95SLO", LatencyP95SLO, 0.200},
		{"LatencyP99SLO", LatencyP99SLO, 0.500},
		{"ErrorRateSLO", ErrorRateSLO, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.value, tt.expected)
			}
		})
	}
}

/* ───────── tracking ───────── */

func TestTracker_CountsServerErrorsOnly(t *testing.T) {
	var tr Tracker
	tr.Observe(200)
	tr.Observe(404)
	tr.Observe(500)
	tr.Observe(503)

	total, errors := tr.Snapshot()
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if errors != 2 {
		t.Errorf("errors = %d, want 2", errors)
	}
}

func TestTracker_ReportResetsCounters(t *testing.T) {
	var tr Tracker
	tr.Observe(200)
	tr.Observe(500)
	tr.Report()

	total, errors := tr.Snapshot()
	if total != 0 || errors != 0 {
		t.Errorf("counters after report = (%d, %d), want (0, 0)", total, errors)
	}
}

func TestReport_PublishesGauges(t *testing.T) {
	// 1 error out of 4 requests.
	Observe(200)
	Observe(200)
	Observe(201)
	Observe(502)
	Report()

	metric := &io_prometheus_client.Metric{}
	if err := sloErrorRate.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 0.25 {
		t.Errorf("slo_error_rate_ratio = %v, want 0.25", got)
	}

	metric = &io_prometheus_client.Metric{}
	if err := sloAvailability.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 0.75 {
		t.Errorf("slo_availability_ratio = %v, want 0.75", got)
	}
}

func TestReport_IdleIntervalSpendsNoBudget(t *testing.T) {
	Report()

	metric := &io_prometheus_client.Metric{}
	if err := sloAvailability.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 1 {
		t.Errorf("slo_availability_ratio = %v, want 1", got)
	}
}
