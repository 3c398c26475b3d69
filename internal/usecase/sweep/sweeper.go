// Package sweep implements the scheduled reconciliation of persisted
// lifecycle statuses. Item statuses are snapshots taken at write time;
// as the clock advances they drift (available items enter the expiring
// window, expiring items pass their date). The sweeper scans candidates,
// reclassifies them with the domain rule, corrects the store, and hands a
// digest of the transitions to the notification service.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fresh-catalog/internal/domain/entity"
	obsmetrics "fresh-catalog/internal/observability/metrics"
	"fresh-catalog/internal/repository"
	"fresh-catalog/internal/usecase/notify"
)

const defaultBatchSize = 500

// Sweeper runs one full reconciliation pass over the catalog.
type Sweeper struct {
	Repo     repository.SweepRepository
	Notifier notify.Service

	// BatchSize bounds one candidate fetch. Zero means the default.
	BatchSize int

	// Now returns the current time; tests override it.
	Now func() time.Time
}

// Stats summarizes one sweep run.
type Stats struct {
	Scanned  int // candidates examined
	Expired  int // items newly marked expired
	Expiring int // items newly marked expiring
	Failed   int // status writes that failed
}

// Run scans the store in keyset batches and corrects every stale status.
// Classification happens here with the same domain rule the write path
// uses, so the store never sees a status the API could not have produced.
//
// Items deleted between fetch and update are skipped silently; any other
// write failure is counted and the sweep continues, correcting as much as
// it can.
func (s *Sweeper) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	now := s.Now()
	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var stats Stats
	digest := &entity.ExpiryDigest{GeneratedAt: now}

	afterID := ""
	for {
		batch, err := s.Repo.FetchCandidates(ctx, now, afterID, batchSize)
		if err != nil {
			obsmetrics.RecordSweepError("fetch")
			obsmetrics.RecordSweepRun(false, time.Since(start))
			return stats, fmt.Errorf("fetch candidates: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for _, item := range batch {
			stats.Scanned++
			status := entity.ClassifyExpiry(item.ExpiryDate, now)
			if status == item.LifecycleStatus {
				continue
			}

			if err := s.Repo.UpdateStatus(ctx, item.ID, status); err != nil {
				if errors.Is(err, entity.ErrNotFound) {
					continue // deleted mid-sweep
				}
				stats.Failed++
				obsmetrics.RecordSweepError("update")
				slog.Warn("Status update failed",
					slog.String("item_id", item.ID),
					slog.String("to_status", string(status)),
					slog.Any("error", err))
				continue
			}

			obsmetrics.RecordItemReclassified(string(status))
			item.LifecycleStatus = status
			switch status {
			case entity.StatusExpired:
				stats.Expired++
				digest.Expired = append(digest.Expired, item)
			case entity.StatusExpiring:
				stats.Expiring++
				digest.Expiring = append(digest.Expiring, item)
			}
		}

		afterID = batch[len(batch)-1].ID
		if len(batch) < batchSize {
			break
		}
	}

	obsmetrics.RecordSweepRun(stats.Failed == 0, time.Since(start))
	slog.Info("Expiry sweep complete",
		slog.Int("scanned", stats.Scanned),
		slog.Int("expired", stats.Expired),
		slog.Int("expiring", stats.Expiring),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", time.Since(start)))

	if s.Notifier != nil && !digest.Empty() {
		if err := s.Notifier.NotifyDigest(ctx, digest); err != nil {
			slog.Warn("Digest dispatch failed", slog.Any("error", err))
		}
	}
	return stats, nil
}
