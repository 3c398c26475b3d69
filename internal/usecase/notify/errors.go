package notify

import "errors"

// Sentinel errors for notify use case operations.
var (
	// ErrChannelDisabled indicates that Send() was called on a disabled
	// channel.
	ErrChannelDisabled = errors.New("channel is disabled")

	// ErrEmptyDigest indicates that the digest is nil or carries no
	// lifecycle transitions worth announcing.
	ErrEmptyDigest = errors.New("empty expiry digest")
)
