package http

import (
	"net/http"
)

// InputValidation returns middleware that validates and limits request
// inputs before they reach a handler:
//   - URI path length (2KB)
//   - request body size (1MB; catalog payloads are small)
//
// This keeps oversized requests from tying up handler goroutines.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 2048 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

			next.ServeHTTP(w, r)
		})
	}
}
