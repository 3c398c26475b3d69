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

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Slack API calls
	Timeout time.Duration
}

// SlackNotifier sends expiry digests to Slack via Incoming Webhook.
type SlackNotifier struct {
	config      SlackConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	retryCfg    retry.Config
}

// NewSlackNotifier creates a new SlackNotifier with the specified
// configuration. The rate limiter is set to 1 request/second with burst
// of 1, matching the Slack Incoming Webhook limit of one message per
// second.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(1.0, 1),
		retryCfg:    retry.WebhookConfig(),
	}
}

// SlackWebhookPayload represents the JSON payload sent to Slack webhook using Block Kit.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`   // Fallback text (required)
	Blocks []SlackBlock `json:"blocks"` // Rich formatting blocks
}

// SlackBlock represents a Slack Block Kit block.
type SlackBlock struct {
	Type     string            `json:"type"`               // "section", "context", "divider"
	Text     *SlackTextObject  `json:"text,omitempty"`     // Text content (for section)
	Elements []SlackTextObject `json:"elements,omitempty"` // Elements (for context)
}

// SlackTextObject represents a text object in Slack Block Kit.
type SlackTextObject struct {
	Type string `json:"type"` // "mrkdwn" or "plain_text"
	Text string `json:"text"` // Actual text content
}

const (
	// Slack Block Kit limits
	maxSectionTextLength = 3000
	maxFallbackLength    = 150

	slackTruncationSuffix = "..."
)

// buildBlockKitPayload creates a Slack webhook payload from an expiry
// digest. Expired items come first since they need the most urgent
// attention; the context block carries the sweep timestamp.
func (s *SlackNotifier) buildBlockKitPayload(digest *entity.ExpiryDigest) SlackWebhookPayload {
	fallback := fmt.Sprintf("Expiry sweep: %d expired, %d expiring",
		len(digest.Expired), len(digest.Expiring))
	fallback = truncateText(fallback, maxFallbackLength, slackTruncationSuffix)

	blocks := []SlackBlock{{
		Type: "section",
		Text: &SlackTextObject{Type: "mrkdwn", Text: "*" + fallback + "*"},
	}}

	if len(digest.Expired) > 0 {
		text := ":warning: *Expired*\n" + strings.Join(digestLines(digest.Expired), "\n")
		blocks = append(blocks, SlackBlock{
			Type: "section",
			Text: &SlackTextObject{
				Type: "mrkdwn",
				Text: truncateText(text, maxSectionTextLength, slackTruncationSuffix),
			},
		})
	}

	if len(digest.Expiring) > 0 {
		text := ":hourglass_flowing_sand: *Expiring soon*\n" + strings.Join(digestLines(digest.Expiring), "\n")
		blocks = append(blocks, SlackBlock{
			Type: "section",
			Text: &SlackTextObject{
				Type: "mrkdwn",
				Text: truncateText(text, maxSectionTextLength, slackTruncationSuffix),
			},
		})
	}

	blocks = append(blocks, SlackBlock{
		Type: "context",
		Elements: []SlackTextObject{{
			Type: "mrkdwn",
			Text: "Swept at " + digest.GeneratedAt.Format(time.RFC3339),
		}},
	})

	return SlackWebhookPayload{Text: fallback, Blocks: blocks}
}

// sendWebhookRequest performs one webhook POST. Non-2xx responses become
// *retry.HTTPError so the retry policy can distinguish transient failures
// (429, 5xx) from permanent ones.
func (s *SlackNotifier) sendWebhookRequest(ctx context.Context, digest *entity.ExpiryDigest) error {
	payload := s.buildBlockKitPayload(digest)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
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
		slog.Warn("Slack rate limit hit",
			slog.String("request_id", requestID),
			slog.Duration("retry_after_hint", retryAfterHint(resp, body)))
	}

	return &retry.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Slack webhook: %s", string(body)),
	}
}

// NotifyExpiry sends a Slack notification for one sweep digest.
// This method implements the Notifier interface.
func (s *SlackNotifier) NotifyExpiry(ctx context.Context, digest *entity.ExpiryDigest) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("Starting Slack notification",
		slog.String("request_id", requestID),
		slog.Int("expired", len(digest.Expired)),
		slog.Int("expiring", len(digest.Expiring)))

	if err := s.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	err := retry.WithBackoff(ctx, s.retryCfg, func() error {
		return s.sendWebhookRequest(ctx, digest)
	})
	if err != nil {
		slog.Error("Slack notification failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("slack notification: %w", err)
	}

	slog.Info("Slack notification sent",
		slog.String("request_id", requestID),
		slog.Int("items", digest.Total()))
	return nil
}
