// Package catalog provides use cases for managing catalog items.
// It implements the paginated query engine (page fetching with client-side
// search filtering, aggregate counting) and the catalog writer that derives
// lifecycle statuses at write time.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrItemNotFound indicates that the requested item was not found.
	// This error is typically returned when attempting to retrieve, update,
	// or delete an item that does not exist in the store.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemID indicates that the provided item ID is invalid.
	// Item IDs are opaque non-empty strings assigned by the store.
	ErrInvalidItemID = errors.New("invalid item ID")
)
