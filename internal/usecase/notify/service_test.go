package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/usecase/notify"
)

/* ───────── fake channel ───────── */

type fakeChannel struct {
	name    string
	enabled bool
	err     error

	mu   sync.Mutex
	sent []*entity.ExpiryDigest
}

func (c *fakeChannel) Name() string    { return c.name }
func (c *fakeChannel) IsEnabled() bool { return c.enabled }

func (c *fakeChannel) Send(ctx context.Context, digest *entity.ExpiryDigest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, digest)
	return c.err
}

func (c *fakeChannel) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

// drain waits for all in-flight deliveries to settle.
func drain(t *testing.T, svc notify.Service) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := svc.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

/* ───────── dispatch ───────── */

func TestService_DispatchesToEnabledChannelsOnly(t *testing.T) {
	slack := &fakeChannel{name: "slack", enabled: true}
	discord := &fakeChannel{name: "discord", enabled: false}

	svc := notify.NewService([]notify.Channel{slack, discord}, 4)
	if err := svc.NotifyDigest(context.Background(), sampleDigest()); err != nil {
		t.Fatalf("NotifyDigest: %v", err)
	}
	drain(t, svc)

	if slack.sentCount() != 1 {
		t.Errorf("slack: expected 1 delivery, got %d", slack.sentCount())
	}
	if discord.sentCount() != 0 {
		t.Errorf("discord: expected 0 deliveries, got %d", discord.sentCount())
	}
}

func TestService_SkipsEmptyDigest(t *testing.T) {
	slack := &fakeChannel{name: "slack", enabled: true}

	svc := notify.NewService([]notify.Channel{slack}, 4)
	if err := svc.NotifyDigest(context.Background(), nil); err != nil {
		t.Fatalf("NotifyDigest(nil): %v", err)
	}
	if err := svc.NotifyDigest(context.Background(), &entity.ExpiryDigest{}); err != nil {
		t.Fatalf("NotifyDigest(empty): %v", err)
	}
	drain(t, svc)

	if slack.sentCount() != 0 {
		t.Errorf("expected no deliveries for empty digests, got %d", slack.sentCount())
	}
}

func TestService_FailuresDoNotPropagate(t *testing.T) {
	failing := &fakeChannel{name: "slack", enabled: true, err: errors.New("webhook down")}

	svc := notify.NewService([]notify.Channel{failing}, 4)
	if err := svc.NotifyDigest(context.Background(), sampleDigest()); err != nil {
		t.Fatalf("NotifyDigest should not surface channel errors, got %v", err)
	}
	drain(t, svc)

	if failing.sentCount() != 1 {
		t.Errorf("expected 1 attempted delivery, got %d", failing.sentCount())
	}
}

/* ───────── circuit breaker ───────── */

func TestService_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	failing := &fakeChannel{name: "slack", enabled: true, err: errors.New("webhook down")}

	svc := notify.NewService([]notify.Channel{failing}, 1)
	for i := 0; i < 6; i++ {
		if err := svc.NotifyDigest(context.Background(), sampleDigest()); err != nil {
			t.Fatalf("NotifyDigest: %v", err)
		}
		// Serialize deliveries so the breaker sees consecutive failures.
		time.Sleep(10 * time.Millisecond)
	}
	drain(t, svc)

	health := svc.GetChannelHealth()
	if len(health) != 1 {
		t.Fatalf("expected 1 health entry, got %d", len(health))
	}
	if !health[0].CircuitBreakerOpen {
		t.Error("expected circuit breaker to be open after consecutive failures")
	}
}

/* ───────── health reporting ───────── */

func TestService_GetChannelHealth(t *testing.T) {
	slack := &fakeChannel{name: "slack", enabled: true}
	discord := &fakeChannel{name: "discord", enabled: false}

	svc := notify.NewService([]notify.Channel{slack, discord}, 4)
	defer drain(t, svc)

	health := svc.GetChannelHealth()
	if len(health) != 2 {
		t.Fatalf("expected 2 health entries, got %d", len(health))
	}
	if health[0].Name != "slack" || !health[0].Enabled || health[0].CircuitBreakerOpen {
		t.Errorf("unexpected slack health: %+v", health[0])
	}
	if health[1].Name != "discord" || health[1].Enabled {
		t.Errorf("unexpected discord health: %+v", health[1])
	}
}
