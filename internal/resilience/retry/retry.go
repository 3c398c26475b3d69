// Package retry runs operations again after transient failures, with
// exponential backoff and jitter between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Config shapes the backoff schedule for one call site.
type Config struct {
	// MaxAttempts bounds the total calls, first try included.
	MaxAttempts int

	// InitialDelay is the pause before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the pause regardless of growth.
	MaxDelay time.Duration

	// Multiplier grows the pause after each failed attempt.
	Multiplier float64

	// JitterFraction adds up to this fraction of the pause as random
	// slack, so synchronized callers fan out.
	JitterFraction float64
}

// DefaultConfig is the general-purpose schedule.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// DBConfig retries quickly. Store hiccups either clear in milliseconds
// or the circuit breaker takes over.
func DBConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   100 * time.Millisecond,
		MaxDelay:       1 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// WebhookConfig retries patiently. Digest delivery has no latency
// deadline, so waiting out a slow webhook beats dropping the alert.
func WebhookConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialDelay:   1 * time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// WithBackoff calls fn until it succeeds, the error proves permanent, the
// attempt budget runs out, or ctx is cancelled mid-pause.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	pause := cfg.InitialDelay

	var lastErr error
	for attempt := 1; ; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry",
					slog.Int("attempt", attempt))
			}
			return nil
		}

		if !IsRetryable(lastErr) {
			slog.Warn("non-retryable error, aborting",
				slog.Int("attempt", attempt),
				slog.Any("error", lastErr))
			return lastErr
		}
		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", pause),
			slog.Any("error", lastErr))

		select {
		case <-time.After(pause):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		pause = nextPause(pause, cfg)
	}
}

func nextPause(current time.Duration, cfg Config) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxDelay {
		next = cfg.MaxDelay
	}

	frac := cfg.JitterFraction
	if frac <= 0 {
		return next
	}
	if frac > 1.0 {
		frac = 1.0
	}
	// #nosec G404 -- backoff jitter needs no cryptographic randomness.
	return next + time.Duration(rand.Float64()*float64(next)*frac)
}

// IsRetryable reports whether err looks transient. Context cancellation
// is permanent; network timeouts, connection-level syscall errors, and
// throttling or server-side HTTP statuses are worth another attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, syscall.ENETUNREACH):
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode >= 500 && httpErr.StatusCode < 600:
			return true
		case httpErr.StatusCode == http.StatusTooManyRequests:
			return true
		case httpErr.StatusCode == http.StatusRequestTimeout:
			return true
		}
	}

	return false
}

// HTTPError carries a response status so the retry policy can separate
// throttling and server faults from client mistakes.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
