// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts W3C trace context from incoming requests,
// opens a server span per request, and returns the trace id to clients via
// the X-Trace-Id header so that a paginated fetch can be correlated across
// the access log, the span, and the client report.
//
// Example usage:
//
//	import "fresh-catalog/internal/observability/tracing"
//
//	mux := http.NewServeMux()
//	handler := tracing.Middleware(mux)
//
//	func fetchPage(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "catalog.fetch_page")
//	    defer span.End()
//	    // ... fetch the page ...
//	}
package tracing
