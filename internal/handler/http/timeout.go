package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout caps how long a single request may run. The handler executes in
// its own goroutine with a deadline-carrying context; if the deadline fires
// first, the client gets 504 and any later writes from the handler are
// swallowed. A shared latch serializes the race between the two writers.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			latch := &writeLatch{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(latch, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				latch.expire()
			}
		})
	}
}

// writeLatch guards an underlying ResponseWriter so that exactly one party,
// handler or timeout, produces the response.
type writeLatch struct {
	dst http.ResponseWriter

	mu      sync.Mutex
	started bool // headers already sent by the handler
	expired bool // deadline fired, handler output is discarded
}

func (l *writeLatch) Header() http.Header {
	return l.dst.Header()
}

func (l *writeLatch) WriteHeader(status int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.expired || l.started {
		return
	}
	l.started = true
	l.dst.WriteHeader(status)
}

func (l *writeLatch) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !l.started {
		l.started = true
		l.dst.WriteHeader(http.StatusOK)
	}
	return l.dst.Write(p)
}

// expire emits the 504 unless the handler already started a response.
func (l *writeLatch) expire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expired = true
	if l.started {
		return
	}
	l.dst.Header().Set("Content-Type", "application/json")
	l.dst.WriteHeader(http.StatusGatewayTimeout)
	_, _ = l.dst.Write([]byte(`{"error":"request timeout"}`))
}
