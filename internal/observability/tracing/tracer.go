package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "fresh-catalog"

// GetTracer returns the service tracer. The global provider is resolved
// lazily, so spans honor whatever provider main (or a test) installs.
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
