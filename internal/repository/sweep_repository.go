package repository

import (
	"context"
	"time"

	"fresh-catalog/internal/domain/entity"
)

// SweepRepository is the narrow port the expiry sweeper uses to scan and
// correct persisted lifecycle statuses across all tenants.
//
// Candidate selection is deliberately a superset: the store returns every
// item whose expiry date falls inside the expiring window relative to now
// and whose stored status is not yet terminal. Classification itself stays
// in the domain layer (entity.ClassifyExpiry) so the ceil-day boundary rule
// lives in exactly one place.
type SweepRepository interface {
	// FetchCandidates returns up to limit items whose status may have
	// drifted since the last write, keyset-ordered by id and starting
	// strictly after afterID. An empty afterID starts from the beginning.
	FetchCandidates(ctx context.Context, now time.Time, afterID string, limit int) ([]*entity.Item, error)

	// UpdateStatus rewrites the persisted lifecycle status of one item.
	// Returns entity.ErrNotFound if no document has the id.
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}
