package pagination

import "fresh-catalog/internal/domain/entity"

// Constraints is the ordered set of store-evaluable constraints for one batch
// fetch. It contains exactly the operations the document store supports:
// equality filters, a single order-by, an optional "start after" cursor, and
// a limit. Free-text search is deliberately absent: the store cannot evaluate
// substring matches without a dedicated search index, so the text filter is
// applied client-side by the page fetcher.
type Constraints struct {
	OwnerID    string         // Equality constraint on the tenant key (always present)
	Status     *entity.Status // Equality constraint on lifecycle status, nil when the filter is "all"
	SortField  SortField      // Order-by field (exactly one)
	SortDir    SortDirection  // Order-by direction
	StartAfter Cursor         // Keyset position to resume after; empty means start of data
	FetchSize  int            // Maximum number of raw documents to fetch
}

// BuildPlan turns a validated parameter set and a ledger cursor into the
// constraint list for one batch fetch.
//
// When a search term is present the plan over-fetches a bounded multiple of
// the page size (config.SearchFetchFactor) so that client-side filtering can
// still fill a page. Combining an arbitrary text-range constraint with an
// unrelated equality/order-by would require a composite index that is not
// guaranteed to exist; over-fetching avoids that provisioning requirement at
// the cost of potential page under-fill.
func BuildPlan(p Params, cursor Cursor, config Config) Constraints {
	fetchSize := p.PageSize
	if p.Search != "" {
		fetchSize = p.PageSize * config.SearchFetchFactor
	}

	return Constraints{
		OwnerID:    p.OwnerID,
		Status:     p.Status.Status(),
		SortField:  p.SortField,
		SortDir:    p.SortDir,
		StartAfter: cursor,
		FetchSize:  fetchSize,
	}
}
