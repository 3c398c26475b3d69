package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/usecase/catalog"
)

/* ───────── writer mock ───────── */

// writerRepo is a minimal single-document store: Create assigns sequential
// ids, Get/Update/Delete operate on the held map.
type writerRepo struct {
	mockItemRepo
	stored map[string]*entity.Item
	nextID int
}

func newWriterRepo() *writerRepo {
	return &writerRepo{stored: make(map[string]*entity.Item), nextID: 1}
}

func (w *writerRepo) Create(_ context.Context, item *entity.Item) error {
	item.ID = fmt.Sprintf("item-%d", w.nextID)
	w.nextID++
	cp := *item
	w.stored[item.ID] = &cp
	return nil
}

func (w *writerRepo) Get(_ context.Context, id string) (*entity.Item, error) {
	item, ok := w.stored[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (w *writerRepo) Update(_ context.Context, item *entity.Item) error {
	if _, ok := w.stored[item.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *item
	w.stored[item.ID] = &cp
	return nil
}

func (w *writerRepo) Delete(_ context.Context, id string) error {
	if _, ok := w.stored[id]; !ok {
		return entity.ErrNotFound
	}
	delete(w.stored, id)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newWriterService(repo *writerRepo) *catalog.Service {
	return &catalog.Service{Repo: repo, Now: fixedNow}
}

func daysFromNow(d int) *time.Time {
	ts := fixedNow().AddDate(0, 0, d)
	return &ts
}

/* ───────── create ───────── */

func TestService_Create_PersistsClassifiedStatus(t *testing.T) {
	tests := []struct {
		name   string
		expiry *time.Time
		want   entity.Status
	}{
		{name: "expired yesterday", expiry: daysFromNow(-1), want: entity.StatusExpired},
		{name: "expiring in two days", expiry: daysFromNow(2), want: entity.StatusExpiring},
		{name: "available in ten days", expiry: daysFromNow(10), want: entity.StatusAvailable},
		{name: "no expiry date", expiry: nil, want: entity.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newWriterRepo()
			svc := newWriterService(repo)

			id, err := svc.Create(context.Background(), catalog.CreateInput{
				OwnerID:    "tenant-1",
				Name:       "Greek Yogurt",
				Price:      3.20,
				Quantity:   8,
				ExpiryDate: tt.expiry,
			})
			require.NoError(t, err)
			require.NotEmpty(t, id)

			stored := repo.stored[id]
			require.NotNil(t, stored)
			assert.Equal(t, tt.want, stored.LifecycleStatus)
			assert.Equal(t, fixedNow(), stored.CreatedAt)
			assert.Equal(t, fixedNow(), stored.UpdatedAt)
		})
	}
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   catalog.CreateInput
	}{
		{
			name: "missing owner",
			in:   catalog.CreateInput{Name: "Eggs", Price: 2, Quantity: 12},
		},
		{
			name: "missing name",
			in:   catalog.CreateInput{OwnerID: "tenant-1", Price: 2, Quantity: 12},
		},
		{
			name: "negative price",
			in:   catalog.CreateInput{OwnerID: "tenant-1", Name: "Eggs", Price: -2, Quantity: 12},
		},
		{
			name: "zero quantity",
			in:   catalog.CreateInput{OwnerID: "tenant-1", Name: "Eggs", Price: 2, Quantity: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newWriterRepo()
			svc := newWriterService(repo)

			_, err := svc.Create(context.Background(), tt.in)
			var vErr *entity.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Empty(t, repo.stored, "nothing should be persisted on validation failure")
		})
	}
}

func TestService_Create_ZeroPriceMeansFree(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:  "tenant-1",
		Name:     "Day-old Bread",
		Price:    0,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), repo.stored[id].Price)
}

/* ───────── update ───────── */

func TestService_Update_RecomputesStatusWhenExpiryPresent(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:    "tenant-1",
		Name:       "Greek Yogurt",
		Price:      3.20,
		Quantity:   8,
		ExpiryDate: daysFromNow(10),
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusAvailable, repo.stored[id].LifecycleStatus)

	err = svc.Update(context.Background(), catalog.UpdateInput{
		ID:         id,
		ExpiryDate: daysFromNow(-2),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusExpired, repo.stored[id].LifecycleStatus)
}

func TestService_Update_LeavesStatusSnapshotWithoutExpiryInPayload(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:    "tenant-1",
		Name:       "Greek Yogurt",
		Price:      3.20,
		Quantity:   8,
		ExpiryDate: daysFromNow(2),
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusExpiring, repo.stored[id].LifecycleStatus)

	newPrice := 1.99
	err = svc.Update(context.Background(), catalog.UpdateInput{ID: id, Price: &newPrice})
	require.NoError(t, err)

	// The status is a write-time snapshot: untouched unless the payload
	// carries an expiry date.
	assert.Equal(t, entity.StatusExpiring, repo.stored[id].LifecycleStatus)
	assert.Equal(t, 1.99, repo.stored[id].Price)
}

func TestService_Update_PreservesCreatedAt(t *testing.T) {
	repo := newWriterRepo()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	clock := base
	svc := &catalog.Service{Repo: repo, Now: func() time.Time { return clock }}

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:  "tenant-1",
		Name:     "Eggs",
		Price:    2,
		Quantity: 12,
	})
	require.NoError(t, err)

	clock = base.AddDate(0, 0, 5)
	name := "Free-range Eggs"
	require.NoError(t, svc.Update(context.Background(), catalog.UpdateInput{ID: id, Name: &name}))

	assert.Equal(t, base, repo.stored[id].CreatedAt, "CreatedAt is set once at creation")
	assert.Equal(t, clock, repo.stored[id].UpdatedAt, "UpdatedAt moves on every write")
}

func TestService_Update_Errors(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	err := svc.Update(context.Background(), catalog.UpdateInput{ID: ""})
	assert.ErrorIs(t, err, catalog.ErrInvalidItemID)

	err = svc.Update(context.Background(), catalog.UpdateInput{ID: "missing"})
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

/* ───────── delete / get / classify ───────── */

func TestService_Delete(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:  "tenant-1",
		Name:     "Eggs",
		Price:    2,
		Quantity: 12,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Empty(t, repo.stored)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), catalog.ErrItemNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), catalog.ErrInvalidItemID)
}

func TestService_Get(t *testing.T) {
	repo := newWriterRepo()
	svc := newWriterService(repo)

	id, err := svc.Create(context.Background(), catalog.CreateInput{
		OwnerID:  "tenant-1",
		Name:     "Eggs",
		Price:    2,
		Quantity: 12,
	})
	require.NoError(t, err)

	item, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Eggs", item.Name)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, catalog.ErrInvalidItemID)
}

func TestService_Classify_IsIndependentOfPersistedSnapshot(t *testing.T) {
	svc := newWriterService(newWriterRepo())

	expiry := daysFromNow(1)
	assert.Equal(t, entity.StatusExpiring, svc.Classify(expiry, fixedNow()))

	// A week later the same date classifies as expired without any write.
	assert.Equal(t, entity.StatusExpired, svc.Classify(expiry, fixedNow().AddDate(0, 0, 7)))
}
