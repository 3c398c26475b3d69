package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/items.sql
var seedItemsSQL string

// MigrateUp creates the catalog schema. All statements are idempotent so the
// migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS items (
    id               TEXT PRIMARY KEY,
    owner_id         TEXT NOT NULL,
    name             TEXT NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    price            DOUBLE PRECISION NOT NULL,
    quantity         INTEGER NOT NULL,
    expiry_date      TIMESTAMPTZ,
    lifecycle_status VARCHAR(20) NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// One composite index per sort field. Batch fetches always constrain on
	// owner_id and order by (sort column, id), so each index covers both the
	// equality filter and the keyset predicate.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_items_owner_name ON items(owner_id, name, id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_owner_price ON items(owner_id, price, id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_owner_created_at ON items(owner_id, created_at, id)`,
		// Status-constrained variant of the most common shape.
		`CREATE INDEX IF NOT EXISTS idx_items_owner_status_name ON items(owner_id, lifecycle_status, name, id)`,
		// Expiry sweep: find items whose stored status may lag their expiry date.
		`CREATE INDEX IF NOT EXISTS idx_items_expiry_date ON items(expiry_date) WHERE expiry_date IS NOT NULL`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// Status values are closed; enforce at the schema level too.
	// PostgreSQL lacks ADD CONSTRAINT IF NOT EXISTS, so errors are ignored.
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_lifecycle_status'
    ) THEN
        ALTER TABLE items ADD CONSTRAINT chk_lifecycle_status
        CHECK (lifecycle_status IN ('available', 'expiring', 'expired'));
    END IF;
END $$;
`)

	// Demo data, skipped when the ids already exist.
	if _, err := db.Exec(seedItemsSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the catalog schema.
// Use with caution: this deletes all catalog data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_items_owner_name`,
		`DROP INDEX IF EXISTS idx_items_owner_price`,
		`DROP INDEX IF EXISTS idx_items_owner_created_at`,
		`DROP INDEX IF EXISTS idx_items_owner_status_name`,
		`DROP INDEX IF EXISTS idx_items_expiry_date`,
		`DROP TABLE IF EXISTS items CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
