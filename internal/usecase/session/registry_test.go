package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/* ───────── acquire ───────── */

func TestRegistry_SameShapeSharesLedger(t *testing.T) {
	r := NewRegistry(time.Minute)
	p := baseParams()

	first, release := r.Acquire(p)
	first.Append("cursor-1")
	release()

	p.PageIndex = 3 // page index is not part of the shape
	second, release := r.Acquire(p)
	defer release()

	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Len())
}

func TestRegistry_DifferentShapeGetsFreshLedger(t *testing.T) {
	r := NewRegistry(time.Minute)
	p := baseParams()

	first, release := r.Acquire(p)
	first.Append("cursor-1")
	release()

	p.Search = "milk"
	second, release := r.Acquire(p)
	defer release()

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, second.Len())
}

/* ───────── invalidation ───────── */

func TestRegistry_InvalidateDropsOwnerLedgers(t *testing.T) {
	r := NewRegistry(time.Minute)

	p := baseParams()
	_, release := r.Acquire(p)
	release()

	other := baseParams()
	other.OwnerID = "tenant-2"
	_, release = r.Acquire(other)
	release()

	r.Invalidate("tenant-1")
	assert.Equal(t, 1, r.Len())
}

/* ───────── eviction ───────── */

func TestRegistry_EvictsIdleShapes(t *testing.T) {
	r := NewRegistry(time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	old, release := r.Acquire(baseParams())
	old.Append("cursor-1")
	release()

	now = now.Add(2 * time.Minute)

	fresh, release := r.Acquire(baseParams())
	defer release()

	// The idle entry was swept; the same shape starts over.
	assert.NotSame(t, old, fresh)
	assert.Equal(t, 1, fresh.Len())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RecentShapesSurviveSweep(t *testing.T) {
	r := NewRegistry(time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	kept, release := r.Acquire(baseParams())
	kept.Append("cursor-1")
	release()

	now = now.Add(30 * time.Second)

	again, release := r.Acquire(baseParams())
	defer release()

	assert.Same(t, kept, again)
	assert.Equal(t, 2, again.Len())
}

func TestRegistry_DefaultTTL(t *testing.T) {
	r := NewRegistry(0)
	assert.Equal(t, DefaultLedgerTTL, r.ttl)
}
