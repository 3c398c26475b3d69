// Package requestid tags every request with an ID so one request can be
// followed across log lines, traces, and upstream services.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey is where the ID lives in the request context.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader carries the ID on the wire in both directions.
	RequestIDHeader = "X-Request-ID"
)

// FromContext returns the request ID, or "" when the request never
// passed through Middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Middleware reuses an inbound X-Request-ID when a gateway already
// assigned one, and mints a UUID otherwise. The ID is echoed on the
// response header and stored on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
