// Package memory provides an in-memory implementation of the item
// repository. It backs unit tests and local development runs where no
// PostgreSQL instance is available, and models the same document-store
// semantics as the SQL adapter: equality filters, one order-by with id as
// tie-breaker, start-after cursors and a fetch limit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/repository"
)

type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{items: make(map[string]*entity.Item)}
}

// clone guards against callers mutating stored documents through aliases.
func clone(item *entity.Item) *entity.Item {
	cp := *item
	if item.ExpiryDate != nil {
		t := *item.ExpiryDate
		cp.ExpiryDate = &t
	}
	return &cp
}

// less orders two items under a sort field, breaking ties by id so the
// total order is unambiguous.
func less(a, b *entity.Item, field pagination.SortField) bool {
	switch field {
	case pagination.SortByPrice:
		if a.Price != b.Price {
			return a.Price < b.Price
		}
	case pagination.SortByCreatedAt:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		if a.Name != b.Name {
			return strings.Compare(a.Name, b.Name) < 0
		}
	}
	return a.ID < b.ID
}

// FetchBatch executes one constrained batch fetch against the in-memory set.
// The cursor is the id of the document to resume after, matching the
// position-based start-after semantics of the SQL adapter.
func (repo *ItemRepo) FetchBatch(ctx context.Context, cons pagination.Constraints) (*repository.ItemBatch, error) {
	repo.mu.RLock()
	matched := make([]*entity.Item, 0, len(repo.items))
	for _, item := range repo.items {
		if item.OwnerID != cons.OwnerID {
			continue
		}
		if cons.Status != nil && item.LifecycleStatus != *cons.Status {
			continue
		}
		matched = append(matched, item)
	}
	repo.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if cons.SortDir == pagination.SortDesc {
			return less(matched[j], matched[i], cons.SortField)
		}
		return less(matched[i], matched[j], cons.SortField)
	})

	start := 0
	if cons.StartAfter != "" {
		pos := -1
		for i, item := range matched {
			if item.ID == string(cons.StartAfter) {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("FetchBatch: unknown cursor: %w", entity.ErrInvalidInput)
		}
		start = pos + 1
	}

	end := start + cons.FetchSize
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]*entity.Item, 0, end-start)
	for _, item := range matched[start:end] {
		items = append(items, clone(item))
	}

	batch := &repository.ItemBatch{Items: items}
	if len(items) > 0 {
		batch.LastCursor = pagination.Cursor(items[len(items)-1].ID)
	}
	return batch, nil
}

func (repo *ItemRepo) Count(ctx context.Context, ownerID string, status *entity.Status) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var count int64
	for _, item := range repo.items {
		if item.OwnerID != ownerID {
			continue
		}
		if status != nil && item.LifecycleStatus != *status {
			continue
		}
		count++
	}
	return count, nil
}

func (repo *ItemRepo) Get(ctx context.Context, id string) (*entity.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	item, ok := repo.items[id]
	if !ok {
		return nil, nil
	}
	return clone(item), nil
}

func (repo *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	item.ID = uuid.NewString()
	repo.items[item.ID] = clone(item)
	return nil
}

func (repo *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[item.ID]; !ok {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	repo.items[item.ID] = clone(item)
	return nil
}

func (repo *ItemRepo) Delete(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[id]; !ok {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	delete(repo.items, id)
	return nil
}
