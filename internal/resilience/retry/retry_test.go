package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"testing"
	"time"
)

func quickConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

/* ───────── WithBackoff ───────── */

func TestWithBackoffFirstTrySucceeds(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), quickConfig(3), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("WithBackoff: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithBackoffRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), quickConfig(5), func() error {
		calls++
		if calls < 3 {
			return syscall.ECONNREFUSED
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithBackoff: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithBackoffExhaustsAttempts(t *testing.T) {
	transient := &HTTPError{StatusCode: http.StatusBadGateway, Message: "bad gateway"}

	calls := 0
	err := WithBackoff(context.Background(), quickConfig(3), func() error {
		calls++
		return transient
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if !errors.Is(err, transient) {
		t.Errorf("final error does not wrap the last failure: %v", err)
	}
	if !strings.Contains(err.Error(), "max retry attempts") {
		t.Errorf("error = %v", err)
	}
}

func TestWithBackoffStopsOnPermanentError(t *testing.T) {
	permanent := &HTTPError{StatusCode: http.StatusNotFound, Message: "gone"}

	calls := 0
	err := WithBackoff(context.Background(), quickConfig(5), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("err = %v, want the permanent error unwrapped", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries on permanent errors)", calls)
	}
}

func TestWithBackoffHonorsCancellation(t *testing.T) {
	cfg := quickConfig(10)
	cfg.InitialDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- WithBackoff(ctx, cfg, func() error {
			calls++
			return syscall.ECONNRESET
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1 (cancelled during the first pause)", calls)
		}
	case <-time.After(time.Second):
		t.Fatal("WithBackoff did not return after cancellation")
	}
}

/* ───────── IsRetryable ───────── */

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"plain error", errors.New("boom"), false},
		{"network timeout", &net.OpError{Op: "dial", Err: timeoutErr{}}, true},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"network unreachable", syscall.ENETUNREACH, true},
		{"wrapped syscall", fmt.Errorf("post webhook: %w", syscall.ETIMEDOUT), true},
		{"http 500", &HTTPError{StatusCode: 500}, true},
		{"http 503", &HTTPError{StatusCode: 503}, true},
		{"http 429", &HTTPError{StatusCode: 429}, true},
		{"http 408", &HTTPError{StatusCode: 408}, true},
		{"http 400", &HTTPError{StatusCode: 400}, false},
		{"http 404", &HTTPError{StatusCode: 404}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

/* ───────── schedule ───────── */

func TestNextPauseGrowsAndCaps(t *testing.T) {
	cfg := Config{MaxDelay: 400 * time.Millisecond, Multiplier: 2.0}

	pause := 100 * time.Millisecond
	pause = nextPause(pause, cfg)
	if pause != 200*time.Millisecond {
		t.Errorf("first growth = %v, want 200ms", pause)
	}
	pause = nextPause(pause, cfg)
	pause = nextPause(pause, cfg)
	if pause != 400*time.Millisecond {
		t.Errorf("capped pause = %v, want 400ms", pause)
	}
}

func TestNextPauseJitterStaysBounded(t *testing.T) {
	cfg := Config{MaxDelay: time.Second, Multiplier: 1.0, JitterFraction: 0.5}

	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := nextPause(base, cfg)
		if got < base || got > base+base/2 {
			t.Fatalf("jittered pause %v outside [100ms, 150ms]", got)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts != 3 || cfg.Multiplier != 2.0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if WebhookConfig().MaxAttempts <= cfg.MaxAttempts {
		t.Error("webhook schedule should retry more than the default")
	}
	if DBConfig().InitialDelay >= cfg.InitialDelay {
		t.Error("store schedule should start faster than the default")
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{StatusCode: 502, Message: "upstream unavailable"}
	if err.Error() != "HTTP 502: upstream unavailable" {
		t.Errorf("Error() = %q", err.Error())
	}
}
