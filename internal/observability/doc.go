// Package observability groups the instrumentation for the catalog API
// and the lifecycle sweeper.
//
// Subpackages:
//   - logging: slog setup and request-scoped loggers
//   - metrics: Prometheus counters and histograms for sweep runs
//   - tracing: OpenTelemetry spans with W3C trace propagation
//   - slo: availability and error-rate gauges against fixed targets
//
// The API server additionally records per-request metrics in the HTTP
// handler package; everything here is shared by both binaries or owned
// by the sweeper.
package observability
