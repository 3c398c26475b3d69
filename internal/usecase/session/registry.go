package session

import (
	"fmt"
	"sync"
	"time"

	"fresh-catalog/internal/common/pagination"
)

// Registry holds one cursor ledger per active query shape, for callers that
// are stateless between requests (the HTTP surface). Two requests under the
// same (owner, search, status, sort, direction, page size) combination share
// a ledger; changing any of those starts a fresh one, because recorded
// cursors are meaningless under a different shape.
//
// Entries not touched for the TTL are evicted opportunistically during
// Acquire, bounding memory for churning query shapes.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	now     func() time.Time
}

type registryEntry struct {
	mu     sync.Mutex
	ledger *pagination.Ledger
	seen   time.Time
}

// DefaultLedgerTTL is how long an untouched query shape keeps its cursors.
const DefaultLedgerTTL = 15 * time.Minute

// NewRegistry creates an empty ledger registry.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultLedgerTTL
	}
	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// shapeKey identifies a query shape. The page index is deliberately absent:
// all pages of one shape share a ledger.
func shapeKey(p pagination.Params) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		p.OwnerID, p.Search, p.Status, p.SortField, p.SortDir, p.PageSize)
}

// Acquire returns the ledger for the given query shape with its entry lock
// held, creating it on first use. The caller must invoke the returned release
// function when done; ledger access is serialized per shape because ledgers
// are not safe for concurrent use.
func (r *Registry) Acquire(p pagination.Params) (*pagination.Ledger, func()) {
	key := shapeKey(p)
	now := r.now()

	r.mu.Lock()
	entry, ok := r.entries[key]
	if !ok {
		entry = &registryEntry{ledger: pagination.NewLedger()}
		r.entries[key] = entry
	}
	entry.seen = now

	for k, e := range r.entries {
		if now.Sub(e.seen) > r.ttl {
			delete(r.entries, k)
		}
	}
	r.mu.Unlock()

	entry.mu.Lock()
	return entry.ledger, entry.mu.Unlock
}

// Invalidate drops every ledger for the given owner. Called after writes,
// which shift document positions and stale any recorded cursor.
func (r *Registry) Invalidate(ownerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := ownerID + "|"
	for k := range r.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(r.entries, k)
		}
	}
}

// Len reports the number of active query shapes, for diagnostics.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
