// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Item, along with
// their lifecycle classification rules and domain-specific errors.
package entity

import "time"

// Item represents a perishable catalog item listed by a tenant (owner).
// It contains the item's commercial attributes, the optional expiry date,
// and the lifecycle status derived from that date at the most recent write.
type Item struct {
	ID              string
	OwnerID         string
	Name            string
	Description     string
	Price           float64
	Quantity        int
	ExpiryDate      *time.Time
	LifecycleStatus Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
