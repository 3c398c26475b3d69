package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fresh-catalog/internal/domain/entity"
)

// FetchCandidates implements repository.SweepRepository over the in-memory
// store, mirroring the keyset scan the SQL adapter performs.
func (repo *ItemRepo) FetchCandidates(ctx context.Context, now time.Time, afterID string, limit int) ([]*entity.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	windowEnd := now.Add(entity.ExpiringWindowDays * 24 * time.Hour)

	candidates := make([]*entity.Item, 0, limit)
	for _, item := range repo.items {
		if item.ExpiryDate == nil || item.LifecycleStatus == entity.StatusExpired {
			continue
		}
		if item.ExpiryDate.After(windowEnd) {
			continue
		}
		if item.ID <= afterID {
			continue
		}
		candidates = append(candidates, clone(item))
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// UpdateStatus rewrites the stored lifecycle status of one item.
func (repo *ItemRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	item, ok := repo.items[id]
	if !ok {
		return fmt.Errorf("UpdateStatus: %w", entity.ErrNotFound)
	}
	item.LifecycleStatus = status
	item.UpdatedAt = time.Now().UTC()
	return nil
}
