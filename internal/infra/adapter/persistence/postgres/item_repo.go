package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/repository"
)

// itemColumns is the canonical scan order for item rows.
const itemColumns = "id, owner_id, name, description, price, quantity, expiry_date, lifecycle_status, created_at, updated_at"

// querier is the subset of *sql.DB the repository needs. It is also
// satisfied by circuitbreaker.DBCircuitBreaker, so callers can slot breaker
// protection in front of the store without the repository noticing.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type ItemRepo struct {
	db           querier
	queryBuilder *ItemQueryBuilder
}

func NewItemRepo(db querier) repository.ItemRepository {
	return &ItemRepo{
		db:           db,
		queryBuilder: NewItemQueryBuilder(),
	}
}

// mapStoreError translates driver failures into the domain sentinels.
// SQLSTATE 42501 is insufficient_privilege; class 08 covers connection
// exceptions. Everything else passes through wrapped.
func mapStoreError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42501":
			return fmt.Errorf("%s: %w: %s", op, entity.ErrPermissionDenied, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "08"):
			return fmt.Errorf("%s: %w: %s", op, entity.ErrUnavailable, pgErr.Message)
		}
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w", op, entity.ErrUnavailable)
	}
	// An open breaker means the store is being shielded from further load.
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w", op, entity.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanItem(scan func(dest ...interface{}) error) (*entity.Item, error) {
	var item entity.Item
	var expiry sql.NullTime
	if err := scan(&item.ID, &item.OwnerID, &item.Name, &item.Description,
		&item.Price, &item.Quantity, &expiry, &item.LifecycleStatus,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if expiry.Valid {
		t := expiry.Time
		item.ExpiryDate = &t
	}
	return &item, nil
}

// FetchBatch executes one constrained keyset batch fetch. The raw batch is
// returned in store order together with the cursor of its last row.
func (repo *ItemRepo) FetchBatch(ctx context.Context, cons pagination.Constraints) (*repository.ItemBatch, error) {
	var after *cursorKey
	if cons.StartAfter != "" {
		key, err := decodeCursor(cons.StartAfter)
		if err != nil {
			return nil, fmt.Errorf("FetchBatch: %w", err)
		}
		after = &key
	}

	whereClause, args := repo.queryBuilder.BuildWhereClause(cons, after)
	limitIndex := len(args) + 1
	args = append(args, cons.FetchSize)

	query := fmt.Sprintf(`
SELECT %s
FROM items
%s
%s
LIMIT $%d`, itemColumns, whereClause, repo.queryBuilder.BuildOrderClause(cons), limitIndex)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError("FetchBatch", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Item, 0, cons.FetchSize)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("FetchBatch: Scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError("FetchBatch", err)
	}

	batch := &repository.ItemBatch{Items: items}
	if len(items) > 0 {
		batch.LastCursor = encodeCursor(items[len(items)-1])
	}
	return batch, nil
}

// Count returns the number of items matching the store-evaluable filters.
func (repo *ItemRepo) Count(ctx context.Context, ownerID string, status *entity.Status) (int64, error) {
	query := `SELECT COUNT(*) FROM items WHERE owner_id = $1`
	args := []interface{}{ownerID}
	if status != nil {
		query += ` AND lifecycle_status = $2`
		args = append(args, string(*status))
	}

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapStoreError("Count", err)
	}
	return count, nil
}

func (repo *ItemRepo) Get(ctx context.Context, id string) (*entity.Item, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM items
WHERE id = $1
LIMIT 1`, itemColumns)

	item, err := scanItem(repo.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, mapStoreError("Get", err)
	}
	return item, nil
}

func (repo *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	const query = `
INSERT INTO items
	   (id, owner_id, name, description, price, quantity, expiry_date, lifecycle_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	id := uuid.NewString()
	_, err := repo.db.ExecContext(ctx, query,
		id, item.OwnerID, item.Name, item.Description,
		item.Price, item.Quantity, nullableTime(item.ExpiryDate),
		string(item.LifecycleStatus), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return mapStoreError("Create", err)
	}
	item.ID = id
	return nil
}

func (repo *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	const query = `
UPDATE items SET
       name             = $1,
       description      = $2,
       price            = $3,
       quantity         = $4,
       expiry_date      = $5,
       lifecycle_status = $6,
       updated_at       = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Quantity,
		nullableTime(item.ExpiryDate), string(item.LifecycleStatus),
		item.UpdatedAt, item.ID,
	)
	if err != nil {
		return mapStoreError("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ItemRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapStoreError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

// nullableTime adapts an optional expiry date for the driver.
func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
