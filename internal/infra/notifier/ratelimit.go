package notifier

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter paces outbound webhook calls with a token bucket so the
// notifier stays inside the documented per-webhook budgets instead of
// discovering them through 429s.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter returns a limiter sustaining requestsPerSecond with the
// given burst headroom.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow blocks until a token is available. It returns early with the
// context's error when the caller gives up first.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
