// Package circuitbreaker shields the catalog store and notification
// webhooks from cascading failures, built on github.com/sony/gobreaker.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config tunes a single breaker.
type Config struct {
	// Name identifies the breaker in logs and metrics.
	Name string

	// MaxRequests caps the probes allowed through while half-open.
	MaxRequests uint32

	// Interval is how often the closed-state counters reset.
	Interval time.Duration

	// Timeout is how long an open breaker waits before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker,
	// e.g. 0.6 trips at 60% failures.
	FailureThreshold float64

	// MinRequests is the sample size required before the ratio is
	// considered meaningful.
	MinRequests uint32
}

// DefaultConfig is the baseline tuning for outbound calls.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// WebhookConfig tunes a breaker for digest webhooks. It tolerates a higher
// failure ratio and backs off longer than the store breaker, since a
// flapping Slack or Discord endpoint must never stall a sweep.
func WebhookConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          120 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      5,
	}
}

// CircuitBreaker is a named gobreaker instance that logs state changes.
type CircuitBreaker struct {
	inner *gobreaker.CircuitBreaker
	name  string
}

// New builds a breaker from cfg. State transitions are logged at warn
// level so an open breaker is visible without metrics.
func New(cfg Config) *CircuitBreaker {
	trip := func(counts gobreaker.Counts) bool {
		if counts.Requests < cfg.MinRequests {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
	}

	inner := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: trip,
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &CircuitBreaker{inner: inner, name: cfg.Name}
}

// Execute runs fn through the breaker. While open it fails fast with
// gobreaker.ErrOpenState instead of calling fn.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.inner.Execute(fn)
}

// State reports the breaker's current state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.inner.State()
}

// Name returns the breaker's configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether calls are currently being rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.inner.State() == gobreaker.StateOpen
}
