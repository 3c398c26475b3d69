package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fresh-catalog/internal/domain/entity"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const requestIDKey contextKey = "request_id"

// maxDigestLines caps how many items a single message lists per section.
// Large sweeps still announce the counts; the overflow is summarized.
const maxDigestLines = 20

// itemLine renders one digest entry in a channel-neutral form.
func itemLine(item *entity.Item) string {
	if item.ExpiryDate == nil {
		return fmt.Sprintf("%s (%s)", item.Name, item.OwnerID)
	}
	return fmt.Sprintf("%s (%s), expires %s",
		item.Name, item.OwnerID, item.ExpiryDate.Format("2006-01-02"))
}

// digestLines renders up to maxDigestLines bullet lines for a digest
// section, appending an overflow summary when the section is truncated.
func digestLines(items []*entity.Item) []string {
	lines := make([]string, 0, len(items)+1)
	for i, item := range items {
		if i == maxDigestLines {
			lines = append(lines, fmt.Sprintf("and %d more", len(items)-maxDigestLines))
			break
		}
		lines = append(lines, "• "+itemLine(item))
	}
	return lines
}

// truncateText truncates text to maxLength characters.
// If truncated, appends suffix to indicate continuation.
func truncateText(text string, maxLength int, suffix string) string {
	if len(text) <= maxLength {
		return text
	}
	truncateAt := maxLength - len(suffix)
	if truncateAt < 0 {
		truncateAt = 0
	}
	return text[:truncateAt] + suffix
}

// retryAfterHint extracts the requested backoff from a 429 response,
// checking the JSON body first and falling back to the Retry-After header.
// Returns zero when the service gave no hint.
func retryAfterHint(resp *http.Response, body []byte) time.Duration {
	var payload struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.RetryAfter > 0 {
		return time.Duration(payload.RetryAfter * float64(time.Second))
	}
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 0
}
