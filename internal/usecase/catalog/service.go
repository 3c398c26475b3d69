package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/pkg/search"
	"fresh-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating a new item.
type CreateInput struct {
	OwnerID     string
	Name        string
	Description string
	Price       float64
	Quantity    int
	ExpiryDate  *time.Time
}

// UpdateInput represents the input parameters for updating an existing item.
// Fields with nil values will not be updated. When ExpiryDate is present the
// lifecycle status is recomputed as part of the write.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	ExpiryDate  *time.Time
}

// PageResult represents the result of one page fetch: the items surviving
// client-side search filtering and the end-of-data indicator.
type PageResult struct {
	Items   []*entity.Item
	HasMore bool
}

// Service provides catalog management use cases.
// It handles the pagination query engine and write-time lifecycle
// classification, delegating persistence to the repository.
type Service struct {
	Repo          repository.ItemRepository
	PaginationCfg pagination.Config

	// Now returns the reference instant for lifecycle classification.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// FetchPage fetches one page of the listing described by params, advancing
// the ledger when a new page boundary is crossed for the first time.
//
// The end-of-data indicator is computed from the size of the raw pre-filter
// batch: HasMore is true exactly when the store returned a full batch,
// independent of how many documents survived the client-side search filter.
// This is a documented contract, not an approximation: a page may carry
// fewer than PageSize items while HasMore remains true (unseen data may
// still match later), and a page may be the last one even when filtering
// happens to leave it full, if the raw batch was short.
func (s *Service) FetchPage(ctx context.Context, params pagination.Params, ledger *pagination.Ledger) (*PageResult, error) {
	if err := params.Validate(s.PaginationCfg); err != nil {
		return nil, err
	}

	// Pages are visited in order, never skipped; a cursor must already be
	// recorded for the requested page.
	cursor, err := ledger.Get(params.PageIndex)
	if err != nil {
		return nil, err
	}

	cons := pagination.BuildPlan(params, cursor, s.PaginationCfg)

	start := time.Now()
	batch, err := s.Repo.FetchBatch(ctx, cons)
	if err != nil {
		return nil, fmt.Errorf("fetch batch: %w", err)
	}
	pagination.RecordDuration("repository", time.Since(start).Seconds())

	items := batch.Items
	if params.Search != "" {
		items = search.Filter(batch.Items, params.Search, params.PageSize,
			func(it *entity.Item) string { return it.Name })
	}

	// End-of-data detection is driven by the pre-filter batch size.
	hasMore := len(batch.Items) >= cons.FetchSize

	if params.Search != "" && hasMore && len(items) < params.PageSize {
		pagination.RecordSearchUnderfill()
	}

	// Record the boundary cursor the first time this page is visited.
	// An empty batch produces no cursor and the ledger stops growing.
	if params.PageIndex == ledger.Len()-1 && batch.LastCursor != "" {
		ledger.Append(batch.LastCursor)
	}

	return &PageResult{Items: items, HasMore: hasMore}, nil
}

// TotalCount returns the number of items matching the store-evaluable
// filters (owner and optional lifecycle status). The aggregate deliberately
// ignores any free-text search term: the store cannot evaluate substring
// predicates, so two queries differing only in search term report the same
// count.
func (s *Service) TotalCount(ctx context.Context, ownerID string, status pagination.StatusFilter) (int64, error) {
	if ownerID == "" {
		return 0, &entity.ValidationError{Field: "owner", Message: "is required"}
	}
	if !status.Valid() {
		return 0, &entity.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status filter %q", string(status)),
		}
	}

	count, err := s.Repo.Count(ctx, ownerID, status.Status())
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	pagination.UpdateTotalCount(count)
	return count, nil
}

// Get retrieves a single item by its ID.
// Returns ErrInvalidItemID if the ID is empty.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Item, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Create creates a new item with the provided input and returns the
// store-assigned id. The lifecycle status is derived from the expiry date at
// the moment of the write and persisted alongside the item.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if in.OwnerID == "" {
		return "", &entity.ValidationError{Field: "owner", Message: "is required"}
	}
	if err := entity.ValidateName(in.Name); err != nil {
		return "", err
	}
	if err := entity.ValidateDescription(in.Description); err != nil {
		return "", err
	}
	if err := entity.ValidatePrice(in.Price); err != nil {
		return "", err
	}
	if err := entity.ValidateQuantity(in.Quantity); err != nil {
		return "", err
	}

	now := s.now()
	item := &entity.Item{
		OwnerID:         in.OwnerID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Quantity:        in.Quantity,
		ExpiryDate:      in.ExpiryDate,
		LifecycleStatus: entity.ClassifyExpiry(in.ExpiryDate, now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, item); err != nil {
		return "", fmt.Errorf("create item: %w", err)
	}
	return item.ID, nil
}

// Update modifies an existing item with the provided input.
// Only non-nil fields in the input will be updated. When the payload carries
// an expiry date the lifecycle status is recomputed against the current
// instant; otherwise the persisted snapshot is left untouched. CreatedAt is
// never changed; UpdatedAt is set on every successful write.
// Returns ErrInvalidItemID if the ID is empty.
// Returns ErrItemNotFound if the item does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID == "" {
		return ErrInvalidItemID
	}

	item, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	if in.Name != nil {
		if err := entity.ValidateName(*in.Name); err != nil {
			return err
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		if err := entity.ValidateDescription(*in.Description); err != nil {
			return err
		}
		item.Description = *in.Description
	}
	if in.Price != nil {
		if err := entity.ValidatePrice(*in.Price); err != nil {
			return err
		}
		item.Price = *in.Price
	}
	if in.Quantity != nil {
		if err := entity.ValidateQuantity(*in.Quantity); err != nil {
			return err
		}
		item.Quantity = *in.Quantity
	}

	now := s.now()
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
		item.LifecycleStatus = entity.ClassifyExpiry(item.ExpiryDate, now)
	}
	item.UpdatedAt = now

	if err := s.Repo.Update(ctx, item); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes an item by its ID. This is a single-document removal with
// no cascading effects. Callers holding counts or cursor ledgers must
// refresh them after any successful mutation.
// Returns ErrInvalidItemID if the ID is empty.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidItemID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Classify derives a lifecycle status from an expiry date without touching
// the store. It is exposed so the UI can re-derive a live badge independent
// of the persisted write-time snapshot.
func (s *Service) Classify(expiry *time.Time, now time.Time) entity.Status {
	return entity.ClassifyExpiry(expiry, now)
}
