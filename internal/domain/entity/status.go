package entity

import (
	"math"
	"time"
)

// Status is the lifecycle classification of an item derived from its expiry date.
type Status string

// Lifecycle statuses.
const (
	// StatusAvailable indicates the item has no expiry date or expires more
	// than ExpiringWindowDays days from now.
	StatusAvailable Status = "available"

	// StatusExpiring indicates the item expires within ExpiringWindowDays days
	// (the day of expiry itself counts as expiring, not available).
	StatusExpiring Status = "expiring"

	// StatusExpired indicates the item's expiry date has passed.
	StatusExpired Status = "expired"
)

// ExpiringWindowDays is the number of days before expiry during which an item
// is classified as expiring.
const ExpiringWindowDays = 3

// Valid reports whether s is one of the recognized lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusExpiring, StatusExpired:
		return true
	}
	return false
}

// ClassifyExpiry derives the lifecycle status of an item from its expiry date
// as evaluated at the reference instant now.
//
// Classification rules (diffDays = ceil((expiry - now) / 24h)):
//   - no expiry date         -> available
//   - diffDays < 0           -> expired
//   - 0 <= diffDays <= 3     -> expiring
//   - diffDays > 3           -> available
//
// The function is pure and total: it never fails and has no side effects.
// Callers are responsible for invoking it exactly once per write with a
// stable now, and for persisting the result alongside the item.
func ClassifyExpiry(expiry *time.Time, now time.Time) Status {
	if expiry == nil {
		return StatusAvailable
	}

	diffDays := int(math.Ceil(expiry.Sub(now).Hours() / 24))

	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusAvailable
	}
}
