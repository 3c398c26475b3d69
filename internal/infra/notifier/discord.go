package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/resilience/retry"
)

// DiscordConfig contains configuration for Discord webhook notifications.
type DiscordConfig struct {
	// Enabled indicates whether Discord notifications are enabled
	Enabled bool

	// WebhookURL is the Discord webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Discord API calls
	Timeout time.Duration
}

// DiscordNotifier sends expiry digests to Discord via webhook.
type DiscordNotifier struct {
	config      DiscordConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	retryCfg    retry.Config
}

// NewDiscordNotifier creates a new DiscordNotifier. The rate limiter is
// set to 2 requests/second with burst of 5, conservative against the
// Discord webhook limit of 30 requests per minute per webhook.
func NewDiscordNotifier(config DiscordConfig) *DiscordNotifier {
	return &DiscordNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(2.0, 5),
		retryCfg:    retry.WebhookConfig(),
	}
}

// DiscordWebhookPayload represents the JSON payload sent to a Discord webhook.
type DiscordWebhookPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed represents a Discord rich embed.
type DiscordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []DiscordEmbedField `json:"fields,omitempty"`
	Timestamp string              `json:"timestamp"`
}

// DiscordEmbedField represents a field inside a Discord embed.
type DiscordEmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const (
	// Discord embed limits
	maxEmbedFieldLength = 1024

	discordTruncationSuffix = "..."

	// Embed accent colors
	colorRed    = 0xE74C3C
	colorYellow = 0xF1C40F
)

// buildEmbedPayload creates a Discord webhook payload from an expiry
// digest. The embed is red when anything has expired, yellow when the
// sweep only found items entering the expiring window.
func (d *DiscordNotifier) buildEmbedPayload(digest *entity.ExpiryDigest) DiscordWebhookPayload {
	color := colorYellow
	if len(digest.Expired) > 0 {
		color = colorRed
	}

	embed := DiscordEmbed{
		Title: fmt.Sprintf("Expiry sweep: %d expired, %d expiring",
			len(digest.Expired), len(digest.Expiring)),
		Color:     color,
		Timestamp: digest.GeneratedAt.Format(time.RFC3339),
	}

	if len(digest.Expired) > 0 {
		embed.Fields = append(embed.Fields, DiscordEmbedField{
			Name: "Expired",
			Value: truncateText(strings.Join(digestLines(digest.Expired), "\n"),
				maxEmbedFieldLength, discordTruncationSuffix),
		})
	}
	if len(digest.Expiring) > 0 {
		embed.Fields = append(embed.Fields, DiscordEmbedField{
			Name: "Expiring soon",
			Value: truncateText(strings.Join(digestLines(digest.Expiring), "\n"),
				maxEmbedFieldLength, discordTruncationSuffix),
		})
	}

	return DiscordWebhookPayload{Embeds: []DiscordEmbed{embed}}
}

// sendWebhookRequest performs one webhook POST. Non-2xx responses become
// *retry.HTTPError so the retry policy can distinguish transient failures
// (429, 5xx) from permanent ones.
func (d *DiscordNotifier) sendWebhookRequest(ctx context.Context, digest *entity.ExpiryDigest) error {
	payload := d.buildEmbedPayload(digest)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		requestID, _ := ctx.Value(requestIDKey).(string)
		slog.Warn("Discord rate limit hit",
			slog.String("request_id", requestID),
			slog.Duration("retry_after_hint", retryAfterHint(resp, body)))
	}

	return &retry.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Discord webhook: %s", string(body)),
	}
}

// NotifyExpiry sends a Discord notification for one sweep digest.
// This method implements the Notifier interface.
func (d *DiscordNotifier) NotifyExpiry(ctx context.Context, digest *entity.ExpiryDigest) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("Starting Discord notification",
		slog.String("request_id", requestID),
		slog.Int("expired", len(digest.Expired)),
		slog.Int("expiring", len(digest.Expiring)))

	if err := d.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	err := retry.WithBackoff(ctx, d.retryCfg, func() error {
		return d.sendWebhookRequest(ctx, digest)
	})
	if err != nil {
		slog.Error("Discord notification failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("discord notification: %w", err)
	}

	slog.Info("Discord notification sent",
		slog.String("request_id", requestID),
		slog.Int("items", digest.Total()))
	return nil
}
