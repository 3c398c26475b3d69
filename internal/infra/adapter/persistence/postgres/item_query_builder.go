// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"fresh-catalog/internal/common/pagination"
)

// ItemQueryBuilder builds WHERE and ORDER BY clauses for constrained item
// batch fetches. The builder is shared between the SELECT and COUNT paths so
// both evaluate exactly the same store constraints.
//
// It uses PostgreSQL-specific features: numbered placeholders ($1, $2, ...)
// and row-value comparison for the keyset predicate, so that ties on the
// sort column are broken deterministically by id.
type ItemQueryBuilder struct{}

// NewItemQueryBuilder creates a new query builder instance.
func NewItemQueryBuilder() *ItemQueryBuilder {
	return &ItemQueryBuilder{}
}

// sortColumn maps a sort field to its table column. Params validation
// guarantees the field is one of the three known values.
func sortColumn(field pagination.SortField) string {
	switch field {
	case pagination.SortByPrice:
		return "price"
	case pagination.SortByCreatedAt:
		return "created_at"
	default:
		return "name"
	}
}

// BuildWhereClause builds the WHERE clause and arguments for a batch fetch.
// Equality filters (owner, optional status) come first, then the optional
// keyset predicate resuming after the cursor position.
func (qb *ItemQueryBuilder) BuildWhereClause(cons pagination.Constraints, after *cursorKey) (clause string, args []interface{}) {
	conditions := []string{"owner_id = $1"}
	args = append(args, cons.OwnerID)
	paramIndex := 2

	if cons.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lifecycle_status = $%d", paramIndex))
		args = append(args, string(*cons.Status))
		paramIndex++
	}

	if after != nil {
		op := ">"
		if cons.SortDir == pagination.SortDesc {
			op = "<"
		}
		conditions = append(conditions, fmt.Sprintf("(%s, id) %s ($%d, $%d)",
			sortColumn(cons.SortField), op, paramIndex, paramIndex+1))
		args = append(args, after.sortValue(cons.SortField), after.ID)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderClause builds the ORDER BY clause for a batch fetch. The id is
// always the secondary key so the total order is unambiguous and cursors
// identify exactly one position.
func (qb *ItemQueryBuilder) BuildOrderClause(cons pagination.Constraints) string {
	dir := "ASC"
	if cons.SortDir == pagination.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", sortColumn(cons.SortField), dir, dir)
}
