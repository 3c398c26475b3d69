package notify

import (
	"context"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/infra/notifier"
)

// SlackChannel adapts the infrastructure SlackNotifier to the Channel
// interface used by the dispatch service.
type SlackChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewSlackChannel creates a new Slack channel with the specified
// configuration. When Slack notifications are disabled a NoOpNotifier is
// used instead, so the Channel contract is always satisfied without nil
// checks.
func NewSlackChannel(config notifier.SlackConfig) *SlackChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewSlackNotifier(config)
	} else {
		n = notifier.NewNoOpNotifier()
	}

	return &SlackChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "slack".
func (c *SlackChannel) Name() string {
	return "slack"
}

// IsEnabled returns whether Slack notifications are enabled via
// configuration.
func (c *SlackChannel) IsEnabled() bool {
	return c.enabled
}

// Send delivers one expiry digest to Slack. The underlying notifier
// handles rate limiting, retries, and context cancellation.
func (c *SlackChannel) Send(ctx context.Context, digest *entity.ExpiryDigest) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if digest == nil || digest.Empty() {
		return ErrEmptyDigest
	}
	return c.notifier.NotifyExpiry(ctx, digest)
}
