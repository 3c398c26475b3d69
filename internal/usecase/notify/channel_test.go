package notify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/infra/notifier"
	"fresh-catalog/internal/usecase/notify"
)

/* ───────── helpers ───────── */

func sampleDigest() *entity.ExpiryDigest {
	expiry := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	return &entity.ExpiryDigest{
		GeneratedAt: time.Date(2026, 3, 1, 5, 30, 0, 0, time.UTC),
		Expired: []*entity.Item{
			{ID: "id-a", OwnerID: "tenant-1", Name: "milk", ExpiryDate: &expiry},
		},
	}
}

/* ───────── channel adapters ───────── */

func TestChannels_DisabledRejectSend(t *testing.T) {
	channels := []notify.Channel{
		notify.NewSlackChannel(notifier.SlackConfig{Enabled: false}),
		notify.NewDiscordChannel(notifier.DiscordConfig{Enabled: false}),
	}

	for _, ch := range channels {
		t.Run(ch.Name(), func(t *testing.T) {
			if ch.IsEnabled() {
				t.Error("expected channel to be disabled")
			}
			err := ch.Send(context.Background(), sampleDigest())
			if !errors.Is(err, notify.ErrChannelDisabled) {
				t.Errorf("expected ErrChannelDisabled, got %v", err)
			}
		})
	}
}

func TestChannels_RejectEmptyDigest(t *testing.T) {
	ch := notify.NewSlackChannel(notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: "http://localhost/unused",
		Timeout:    time.Second,
	})

	if err := ch.Send(context.Background(), nil); !errors.Is(err, notify.ErrEmptyDigest) {
		t.Errorf("nil digest: expected ErrEmptyDigest, got %v", err)
	}
	if err := ch.Send(context.Background(), &entity.ExpiryDigest{}); !errors.Is(err, notify.ErrEmptyDigest) {
		t.Errorf("empty digest: expected ErrEmptyDigest, got %v", err)
	}
}

func TestChannels_EnabledDeliverDigest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	channels := []notify.Channel{
		notify.NewSlackChannel(notifier.SlackConfig{
			Enabled: true, WebhookURL: srv.URL, Timeout: 5 * time.Second,
		}),
		notify.NewDiscordChannel(notifier.DiscordConfig{
			Enabled: true, WebhookURL: srv.URL, Timeout: 5 * time.Second,
		}),
	}

	for _, ch := range channels {
		t.Run(ch.Name(), func(t *testing.T) {
			if !ch.IsEnabled() {
				t.Fatal("expected channel to be enabled")
			}
			if err := ch.Send(context.Background(), sampleDigest()); err != nil {
				t.Fatalf("Send: %v", err)
			}
		})
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 webhook calls, got %d", calls.Load())
	}
}
