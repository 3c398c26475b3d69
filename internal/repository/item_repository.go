package repository

import (
	"context"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
)

// ItemBatch is the result of one raw batch fetch from the store.
type ItemBatch struct {
	// Items is the raw batch in store order, at most Constraints.FetchSize
	// documents. No client-side text filtering has been applied.
	Items []*entity.Item

	// LastCursor is the cursor of the last raw document in the batch,
	// usable as a "start after" position for the following batch.
	// Empty when the batch is empty.
	LastCursor pagination.Cursor
}

// ItemRepository is the port to the document store backing the catalog.
// It exposes only the operations the store supports natively: batch fetches
// constrained by equality filters, a single order-by, an optional start-after
// cursor and a limit; an aggregate count over equality filters; and
// single-document CRUD by id. Substring search is deliberately absent: the
// store cannot evaluate it, so it is applied client-side above this port.
//
// Implementations translate store failures into the domain sentinels
// (entity.ErrNotFound, entity.ErrPermissionDenied, entity.ErrUnavailable)
// and never retry; retry policy belongs to the caller.
type ItemRepository interface {
	// FetchBatch executes one constrained batch fetch.
	// Cursors returned in the batch are only valid under the same
	// (owner, status, sort field, sort direction) combination.
	FetchBatch(ctx context.Context, cons pagination.Constraints) (*ItemBatch, error)

	// Count returns the number of items matching the store-evaluable filters.
	// A nil status means no status constraint. The count cannot account for
	// free-text search, which the store cannot evaluate.
	Count(ctx context.Context, ownerID string, status *entity.Status) (int64, error)

	// Get retrieves a single item by id. Returns nil, nil when absent.
	Get(ctx context.Context, id string) (*entity.Item, error)

	// Create persists a new item, assigning its store identifier.
	// The assigned id is written back to item.ID.
	Create(ctx context.Context, item *entity.Item) error

	// Update replaces an existing item document.
	// Returns entity.ErrNotFound if no document has the item's id.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes a single item document by id.
	// Returns entity.ErrNotFound if no document has the id.
	Delete(ctx context.Context, id string) error
}
