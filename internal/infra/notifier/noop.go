package notifier

import (
	"context"

	"fresh-catalog/internal/domain/entity"
)

// NoOpNotifier is a no-operation implementation of the Notifier interface.
// It is used when notifications are disabled to avoid nil checks in the
// code. This follows the Null Object pattern.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyExpiry does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyExpiry(ctx context.Context, digest *entity.ExpiryDigest) error {
	return nil
}
