package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fresh-catalog/internal/usecase/notify"
)

// ChannelHealthResponse reports the health of all notification channels.
type ChannelHealthResponse struct {
	Healthy  bool            `json:"healthy"`
	Channels []ChannelStatus `json:"channels"`
}

// ChannelStatus is the health of a single notification channel.
type ChannelStatus struct {
	Name               string `json:"name"`
	Enabled            bool   `json:"enabled"`
	CircuitBreakerOpen bool   `json:"circuit_breaker_open"`
}

// startMetricsServer starts the Prometheus scrape endpoint together with
// the channel health endpoint. The server shuts down gracefully when ctx
// is cancelled.
//
// Endpoints:
//   - GET /metrics: Prometheus metrics
//   - GET /health/channels: channel health with circuit breaker state
//
// The listen port comes from METRICS_PORT (default 9090).
func startMetricsServer(ctx context.Context, logger *slog.Logger, notifyService notify.Service) *http.Server {
	port := getMetricsPort()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health/channels", channelHealthHandler(notifyService))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("metrics server stopped")
		}
	}()

	return server
}

// getMetricsPort reads METRICS_PORT, defaulting to 9090 on unset or
// invalid values.
func getMetricsPort() int {
	portStr := os.Getenv("METRICS_PORT")
	if portStr == "" {
		return 9090
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 9090
	}
	return port
}

// channelHealthHandler reports 200 when every enabled channel has a
// closed circuit breaker, 503 otherwise.
func channelHealthHandler(notifyService notify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := notifyService.GetChannelHealth()

		channels := make([]ChannelStatus, 0, len(statuses))
		healthy := true
		for _, status := range statuses {
			channels = append(channels, ChannelStatus{
				Name:               status.Name,
				Enabled:            status.Enabled,
				CircuitBreakerOpen: status.CircuitBreakerOpen,
			})
			if status.Enabled && status.CircuitBreakerOpen {
				healthy = false
			}
		}

		statusCode := http.StatusOK
		if !healthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(ChannelHealthResponse{
			Healthy:  healthy,
			Channels: channels,
		})
	}
}
