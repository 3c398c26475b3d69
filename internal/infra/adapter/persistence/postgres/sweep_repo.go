package postgres

import (
	"context"
	"fmt"
	"time"

	"fresh-catalog/internal/domain/entity"
	obsmetrics "fresh-catalog/internal/observability/metrics"
	"fresh-catalog/internal/repository"
)

// SweepRepo implements repository.SweepRepository against the same items
// table as ItemRepo. It shares the querier abstraction, so it runs behind
// the circuit breaker when one is wired in.
type SweepRepo struct {
	db querier
}

func NewSweepRepo(db querier) repository.SweepRepository {
	return &SweepRepo{db: db}
}

// FetchCandidates scans for items whose stored status may lag behind the
// clock. Items already marked expired are skipped: the status is terminal,
// a passing day cannot change it again. The expiring window bound matches
// the domain classifier, so anything further out is still available and
// its write-time status remains correct.
func (repo *SweepRepo) FetchCandidates(ctx context.Context, now time.Time, afterID string, limit int) ([]*entity.Item, error) {
	start := time.Now()
	defer func() { obsmetrics.RecordOperationDuration("fetch_candidates", time.Since(start)) }()

	query := fmt.Sprintf(`
SELECT %s
FROM items
WHERE expiry_date IS NOT NULL
  AND lifecycle_status <> $1
  AND expiry_date <= $2
  AND id > $3
ORDER BY id
LIMIT $4`, itemColumns)

	windowEnd := now.Add(entity.ExpiringWindowDays * 24 * time.Hour)
	rows, err := repo.db.QueryContext(ctx, query,
		string(entity.StatusExpired), windowEnd, afterID, limit)
	if err != nil {
		return nil, mapStoreError("FetchCandidates", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Item, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("FetchCandidates: Scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError("FetchCandidates", err)
	}
	return items, nil
}

// UpdateStatus rewrites the persisted lifecycle status of one item.
func (repo *SweepRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	start := time.Now()
	defer func() { obsmetrics.RecordOperationDuration("update_status", time.Since(start)) }()

	const query = `
UPDATE items SET
       lifecycle_status = $1,
       updated_at       = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
	if err != nil {
		return mapStoreError("UpdateStatus", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateStatus: %w", entity.ErrNotFound)
	}
	return nil
}
