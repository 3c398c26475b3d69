package item_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/infra/adapter/persistence/memory"
	"fresh-catalog/internal/repository"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

/* ───────── shared fixtures ───────── */

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() pagination.Config {
	return pagination.Config{
		DefaultPageSize:   20,
		MaxPageSize:       100,
		SearchFetchFactor: 3,
	}
}

// newTestService builds a service over the in-memory store seeded with
// items for tenant-1, plus one foreign item, and returns the seeded ids
// in name order.
func newTestService(t *testing.T) (*catUC.Service, []string) {
	t.Helper()

	repo := memory.NewItemRepo()
	svc := &catUC.Service{Repo: repo, PaginationCfg: testConfig()}

	names := []string{"apple", "banana", "cherry", "date", "elderberry"}
	ids := make([]string, 0, len(names))
	for i, name := range names {
		id, err := svc.Create(context.Background(), catUC.CreateInput{
			OwnerID:  "tenant-1",
			Name:     name,
			Price:    float64(i + 1),
			Quantity: 10,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		ids = append(ids, id)
	}
	if _, err := svc.Create(context.Background(), catUC.CreateInput{
		OwnerID: "tenant-2", Name: "foreign", Price: 1, Quantity: 1,
	}); err != nil {
		t.Fatalf("seed foreign: %v", err)
	}
	return svc, ids
}

func newRegistry() *session.Registry {
	return session.NewRegistry(time.Minute)
}

/* ───────── failing repository stub ───────── */

// failRepo returns the configured error from every operation, for testing
// error-to-status mapping.
type failRepo struct{ err error }

func (f *failRepo) FetchBatch(context.Context, pagination.Constraints) (*repository.ItemBatch, error) {
	return nil, f.err
}
func (f *failRepo) Count(context.Context, string, *entity.Status) (int64, error) {
	return 0, f.err
}
func (f *failRepo) Get(context.Context, string) (*entity.Item, error) { return nil, f.err }
func (f *failRepo) Create(context.Context, *entity.Item) error        { return f.err }
func (f *failRepo) Update(context.Context, *entity.Item) error        { return f.err }
func (f *failRepo) Delete(context.Context, string) error              { return f.err }
