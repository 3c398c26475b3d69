// Package notifier provides webhook delivery for expiry sweep digests.
// It defines the Notifier interface which allows different delivery
// mechanisms (Slack, Discord, none) to be used interchangeably through
// dependency injection.
package notifier

import (
	"context"

	"fresh-catalog/internal/domain/entity"
)

// Notifier delivers one expiry digest to a single destination.
// Implementations handle rate limiting, retries, and error logging
// internally.
type Notifier interface {
	// NotifyExpiry sends a notification summarizing the lifecycle
	// transitions of one sweep run. The digest must not be nil.
	//
	// Implementations should:
	//   - Generate a unique request ID for tracing
	//   - Apply rate limiting to respect the webhook service's limits
	//   - Retry transient failures with exponential backoff
	//   - Respect context cancellation
	NotifyExpiry(ctx context.Context, digest *entity.ExpiryDigest) error
}
