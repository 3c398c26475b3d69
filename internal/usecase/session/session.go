package session

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/usecase/catalog"
)

// Fetcher is the slice of the catalog service a session needs.
type Fetcher interface {
	FetchPage(ctx context.Context, params pagination.Params, ledger *pagination.Ledger) (*catalog.PageResult, error)
	TotalCount(ctx context.Context, ownerID string, status pagination.StatusFilter) (int64, error)
}

// Session executes reducer effects against a Fetcher and owns the cursor
// ledger of the current query shape.
//
// Concurrency model: Dispatch may be called from any goroutine and returns
// immediately after the state transition; the resulting fetch runs in the
// background. Each shape gets a fresh ledger instance, so a stale in-flight
// fetch can only ever touch the ledger of the shape it was issued under.
// Completions are applied under the session lock and only while their
// generation is still current.
type Session struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu     sync.Mutex
	state  State
	ledger *pagination.Ledger

	inflight sync.WaitGroup
}

// New creates a session for the given initial parameter set and immediately
// dispatches the initial page-0 fetch.
func New(ctx context.Context, fetcher Fetcher, params pagination.Params, logger *slog.Logger) *Session {
	s := &Session{
		fetcher: fetcher,
		logger:  logger,
		state:   NewState(params),
		ledger:  pagination.NewLedger(),
	}
	s.Dispatch(ctx, Refresh{})
	return s
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an event to the session. Disabled transitions are no-ops.
// The returned boolean reports whether the event produced an effect.
func (s *Session) Dispatch(ctx context.Context, ev Event) bool {
	s.mu.Lock()
	next, eff := Reduce(s.state, ev)
	s.state = next
	if eff == nil {
		s.mu.Unlock()
		return false
	}
	if eff.ResetLedger {
		// A fresh instance, not an in-place reset: in-flight fetches issued
		// under the previous shape keep appending to the old ledger, which
		// nothing reads anymore.
		s.ledger = pagination.NewLedger()
	}
	ledger := s.ledger
	s.inflight.Add(1)
	s.mu.Unlock()

	go s.run(ctx, eff, ledger)
	return true
}

// Wait blocks until all in-flight fetches have completed. Used by callers
// that need a settled state, e.g. on shutdown.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// run executes one fetch effect and applies its result if still current.
func (s *Session) run(ctx context.Context, eff *FetchEffect, ledger *pagination.Ledger) {
	defer s.inflight.Done()

	var (
		result *catalog.PageResult
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = s.fetcher.FetchPage(gctx, eff.Params, ledger)
		return err
	})
	if eff.RefreshTotal {
		g.Go(func() error {
			var err error
			total, err = s.fetcher.TotalCount(gctx, eff.Params.OwnerID, eff.Params.Status)
			return err
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Staleness check: a later transition supersedes this fetch entirely.
	if eff.Generation != s.state.Generation || eff.Params != s.state.Params {
		s.logger.Debug("discarding stale fetch result",
			"generation", eff.Generation,
			"current_generation", s.state.Generation)
		return
	}

	if err != nil {
		s.state.Err = err
		s.logger.Error("session fetch failed",
			"owner_id", eff.Params.OwnerID,
			"page", eff.Params.PageIndex,
			"error", err.Error())
		return
	}

	s.state.Err = nil
	s.state.Items = result.Items
	s.state.HasMore = result.HasMore
	if eff.RefreshTotal {
		s.state.Total = total
	}
}
