package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"fresh-catalog/internal/domain/entity"
)

// SortField identifies the item field a listing is ordered by.
type SortField string

// Recognized sort fields.
const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "createdAt"
)

// Valid reports whether f is one of the recognized sort fields.
func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByPrice, SortByCreatedAt:
		return true
	}
	return false
}

// SortDirection identifies the ordering direction of a listing.
type SortDirection string

// Recognized sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether d is one of the recognized sort directions.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// StatusFilter is either "all" (no status constraint) or a lifecycle status.
type StatusFilter string

// StatusFilterAll is the documented default meaning "no status constraint".
const StatusFilterAll StatusFilter = "all"

// Valid reports whether f is "all" or a recognized lifecycle status.
func (f StatusFilter) Valid() bool {
	return f == StatusFilterAll || entity.Status(f).Valid()
}

// Status returns the lifecycle status constraint the filter represents,
// or nil when the filter is "all".
func (f StatusFilter) Status() *entity.Status {
	if f == StatusFilterAll {
		return nil
	}
	s := entity.Status(f)
	return &s
}

// Params is the validated, immutable parameter set of a catalog listing query.
// Any change to a field other than PageIndex constitutes a new query shape
// and invalidates previously recorded cursors.
type Params struct {
	OwnerID   string        // Tenant key (required)
	Search    string        // Optional free text, matched case-insensitively against names client-side
	Status    StatusFilter  // "all" or one lifecycle status
	SortField SortField     // Field the listing is ordered by
	SortDir   SortDirection // Ordering direction
	PageSize  int           // Items per page
	PageIndex int           // 0-based page number
}

// ParseQueryParams parses listing parameters from an HTTP request query string.
// Missing optional parameters receive documented defaults; unrecognized values
// are rejected rather than silently defaulted.
//
// Query parameters:
//   - owner: Tenant key (required)
//   - q: Free-text search term (optional)
//   - status: all | available | expiring | expired (default: all)
//   - sort: name | price | createdAt (default: name)
//   - dir: asc | desc (default: asc)
//   - page_size: Items per page (default from config, max config.MaxPageSize)
//   - page: 0-based page index (default: 0)
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	q := r.URL.Query()

	params := Params{
		OwnerID:   q.Get("owner"),
		Search:    q.Get("q"),
		Status:    StatusFilterAll,
		SortField: SortByName,
		SortDir:   SortAsc,
		PageSize:  config.DefaultPageSize,
		PageIndex: 0,
	}

	if status := q.Get("status"); status != "" {
		params.Status = StatusFilter(status)
	}
	if sort := q.Get("sort"); sort != "" {
		params.SortField = SortField(sort)
	}
	if dir := q.Get("dir"); dir != "" {
		params.SortDir = SortDirection(dir)
	}

	if sizeStr := q.Get("page_size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return params, &entity.ValidationError{Field: "page_size", Message: "must be a positive integer"}
		}
		params.PageSize = size
	}

	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return params, &entity.ValidationError{Field: "page", Message: "must be a non-negative integer"}
		}
		params.PageIndex = page
	}

	if err := params.Validate(config); err != nil {
		return params, err
	}
	return params, nil
}

// Validate validates the parameter set against the configuration.
// Unknown status filters, sort fields, and sort directions are rejected with
// a ValidationError instead of being silently replaced by defaults.
func (p Params) Validate(config Config) error {
	if p.OwnerID == "" {
		return &entity.ValidationError{Field: "owner", Message: "is required"}
	}
	if !p.Status.Valid() {
		return &entity.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status filter %q", string(p.Status)),
		}
	}
	if !p.SortField.Valid() {
		return &entity.ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("unknown sort field %q", string(p.SortField)),
		}
	}
	if !p.SortDir.Valid() {
		return &entity.ValidationError{
			Field:   "dir",
			Message: fmt.Sprintf("unknown sort direction %q", string(p.SortDir)),
		}
	}
	if p.PageSize < 1 || p.PageSize > config.MaxPageSize {
		return &entity.ValidationError{
			Field:   "page_size",
			Message: fmt.Sprintf("must be between 1 and %d", config.MaxPageSize),
		}
	}
	if p.PageIndex < 0 {
		return &entity.ValidationError{Field: "page", Message: "must be a non-negative integer"}
	}
	return nil
}

// SameShape reports whether two parameter sets describe the same query shape,
// i.e. they differ at most in PageIndex. Cursors recorded under one shape are
// not transferable to another; callers must reset their ledger when the shape
// changes.
func (p Params) SameShape(other Params) bool {
	p.PageIndex = 0
	other.PageIndex = 0
	return p == other
}
