// Package notify provides the use case for dispatching expiry sweep
// digests across multiple delivery channels. It fans a digest out to every
// enabled channel with bounded concurrency, per-channel circuit breakers,
// and observability.
package notify

import (
	"context"

	"fresh-catalog/internal/domain/entity"
)

// Channel represents a notification delivery channel (Slack, Discord, etc.).
// Each channel implementation handles its own rate limiting, retries, and
// error handling.
//
// Thread safety: all methods must be safe for concurrent use by multiple
// goroutines. Implementations must respect context cancellation and
// timeout.
type Channel interface {
	// Name returns the channel identifier (lowercase, alphanumeric).
	// It is used for logging, metrics labels, and health reporting.
	Name() string

	// IsEnabled returns true if this channel is enabled via configuration.
	// Disabled channels are skipped during dispatching.
	IsEnabled() bool

	// Send delivers one expiry digest to this channel.
	//
	// Returns:
	//   - nil: digest delivered
	//   - ErrChannelDisabled: Send was called on a disabled channel
	//   - ErrEmptyDigest: digest is nil or carries no transitions
	//   - other errors: delivery failed after the channel's own retries
	Send(ctx context.Context, digest *entity.ExpiryDigest) error
}
