package entity

import "time"

// ExpiryDigest summarizes the lifecycle transitions observed during one
// expiry sweep. Notification channels render it into a single message
// rather than one message per item.
type ExpiryDigest struct {
	GeneratedAt time.Time
	Expiring    []*Item // items that newly entered the expiring window
	Expired     []*Item // items whose expiry date has newly passed
}

// Empty reports whether the digest carries no transitions at all.
func (d *ExpiryDigest) Empty() bool {
	return len(d.Expiring) == 0 && len(d.Expired) == 0
}

// Total returns the number of items covered by the digest.
func (d *ExpiryDigest) Total() int {
	return len(d.Expiring) + len(d.Expired)
}
