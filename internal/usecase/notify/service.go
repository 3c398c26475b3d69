package notify

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"fresh-catalog/internal/domain/entity"
	obsmetrics "fresh-catalog/internal/observability/metrics"
	"fresh-catalog/internal/resilience/circuitbreaker"
)

const (
	workerPoolTimeout   = 5 * time.Second  // Timeout for acquiring a worker slot
	notificationTimeout = 30 * time.Second // Timeout for one channel delivery
)

// Service handles digest dispatching to multiple channels.
// It orchestrates sending notifications asynchronously without blocking
// the caller.
type Service interface {
	// NotifyDigest dispatches one expiry digest to all enabled channels.
	//
	// This method is non-blocking and returns immediately. Deliveries run
	// in background goroutines; failures are logged and counted but never
	// propagate to the caller. Empty digests are silently skipped.
	NotifyDigest(ctx context.Context, digest *entity.ExpiryDigest) error

	// GetChannelHealth returns the health status of all channels,
	// including circuit breaker states, for health check endpoints.
	GetChannelHealth() []ChannelHealthStatus

	// Shutdown gracefully stops the service, waiting for in-flight
	// deliveries to complete or the context to expire.
	Shutdown(ctx context.Context) error
}

// ChannelHealthStatus represents the health of one notification channel.
type ChannelHealthStatus struct {
	Name               string
	Enabled            bool
	CircuitBreakerOpen bool
}

type service struct {
	channels       []Channel
	breakers       map[string]*circuitbreaker.CircuitBreaker
	workerPool     chan struct{} // semaphore bounding concurrent deliveries
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewService creates a notification service over the given channels.
// Each channel gets its own circuit breaker so a flapping webhook cannot
// delay or poison the others.
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	svc := &service{
		channels:       channels,
		breakers:       make(map[string]*circuitbreaker.CircuitBreaker, len(channels)),
		workerPool:     make(chan struct{}, maxConcurrent),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}
	for _, ch := range channels {
		svc.breakers[ch.Name()] = circuitbreaker.New(circuitbreaker.WebhookConfig(ch.Name()))
	}
	return svc
}

// NotifyDigest implements Service.NotifyDigest.
func (s *service) NotifyDigest(ctx context.Context, digest *entity.ExpiryDigest) error {
	if digest == nil || digest.Empty() {
		slog.Debug("Skipping empty expiry digest")
		return nil
	}

	requestID, ok := ctx.Value("request_id").(string)
	if !ok || requestID == "" {
		requestID = uuid.New().String()
	}

	enabledCount := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabledCount++
		}
	}
	SetChannelsEnabled(float64(enabledCount))

	if enabledCount == 0 {
		slog.Debug("No notification channels enabled",
			slog.String("request_id", requestID),
			slog.Int("items", digest.Total()))
		return nil
	}

	slog.Info("Dispatching expiry digest",
		slog.String("request_id", requestID),
		slog.Int("expired", len(digest.Expired)),
		slog.Int("expiring", len(digest.Expiring)),
		slog.Int("enabled_channels", enabledCount))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			channel := ch
			s.wg.Add(1)
			go s.deliverToChannel(requestID, channel, digest)
		}
	}
	return nil
}

// deliverToChannel sends the digest to a single channel in a goroutine.
func (s *service) deliverToChannel(requestID string, channel Channel, digest *entity.ExpiryDigest) {
	defer s.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in notification channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	// Acquire a worker slot, with a timeout so a saturated pool sheds
	// load instead of piling up goroutines.
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("Notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		RecordDropped(channel.Name(), "pool_full")
		return
	}

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()

	start := time.Now()
	breaker := s.breakers[channel.Name()]
	_, err := breaker.Execute(func() (interface{}, error) {
		return nil, channel.Send(ctx, digest)
	})
	duration := time.Since(start)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		slog.Warn("Channel temporarily disabled by circuit breaker",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		RecordDropped(channel.Name(), "circuit_open")
		return
	}

	obsmetrics.RecordNotification(channel.Name(), err == nil, duration)
	if err != nil {
		slog.Warn("Channel notification failed",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.Int("items", digest.Total()),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
		return
	}

	slog.Info("Channel notification sent",
		slog.String("request_id", requestID),
		slog.String("channel", channel.Name()),
		slog.Int("items", digest.Total()),
		slog.Duration("send_duration", duration))
}

// GetChannelHealth implements Service.GetChannelHealth.
func (s *service) GetChannelHealth() []ChannelHealthStatus {
	statuses := make([]ChannelHealthStatus, 0, len(s.channels))
	for _, ch := range s.channels {
		statuses = append(statuses, ChannelHealthStatus{
			Name:               ch.Name(),
			Enabled:            ch.IsEnabled(),
			CircuitBreakerOpen: s.breakers[ch.Name()].IsOpen(),
		})
	}
	return statuses
}

// Shutdown implements Service.Shutdown.
func (s *service) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down notification service")
	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Notification service shutdown complete")
		return nil
	case <-ctx.Done():
		slog.Warn("Notification service shutdown timeout")
		return ctx.Err()
	}
}
