package notify

import (
	"context"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/infra/notifier"
)

// DiscordChannel adapts the infrastructure DiscordNotifier to the Channel
// interface used by the dispatch service.
type DiscordChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewDiscordChannel creates a new Discord channel with the specified
// configuration. When Discord notifications are disabled a NoOpNotifier is
// used instead.
func NewDiscordChannel(config notifier.DiscordConfig) *DiscordChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewDiscordNotifier(config)
	} else {
		n = notifier.NewNoOpNotifier()
	}

	return &DiscordChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "discord".
func (c *DiscordChannel) Name() string {
	return "discord"
}

// IsEnabled returns whether Discord notifications are enabled via
// configuration.
func (c *DiscordChannel) IsEnabled() bool {
	return c.enabled
}

// Send delivers one expiry digest to Discord.
func (c *DiscordChannel) Send(ctx context.Context, digest *entity.ExpiryDigest) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if digest == nil || digest.Empty() {
		return ErrEmptyDigest
	}
	return c.notifier.NotifyExpiry(ctx, digest)
}
