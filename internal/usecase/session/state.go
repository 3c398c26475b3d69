// Package session models an interactive pagination session as a reducer over
// an explicit state struct: a pure function maps (previous state, event) to
// (next state, effect to run). Effects are executed asynchronously; every
// in-flight fetch is tagged with the exact parameter snapshot and generation
// that triggered it, and completions are applied to shared state only while
// that snapshot is still current. A slow response to an earlier filter can
// therefore never overwrite a faster response to a later one.
package session

import (
	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
)

// State is the complete observable state of one pagination session.
// It is a value: reducers return new copies and never mutate in place.
type State struct {
	// Params is the current validated query parameter set, including the
	// current page index.
	Params pagination.Params

	// Items holds the last successfully applied page.
	Items []*entity.Item

	// HasMore reports whether the last applied fetch indicated more data.
	// The next-page transition is enabled exactly when it is true.
	HasMore bool

	// Total is the last applied aggregate count over store-evaluable
	// filters. It does not account for the free-text search term.
	Total int64

	// Err is the error of the most recent applied effect, nil on success.
	Err error

	// Generation increments on every effect-producing transition. An
	// in-flight fetch carrying an older generation is stale and its result
	// must be discarded.
	Generation uint64
}

// NewState returns the initial state for a query parameter set, positioned
// at page 0 with no data applied yet.
func NewState(params pagination.Params) State {
	params.PageIndex = 0
	return State{Params: params}
}

// Event is a state transition request for a pagination session.
type Event interface {
	isEvent()
}

// ParamsChanged reports that the caller changed some part of the query shape
// (search term, status filter, sort field or direction, page size, owner).
// The page index of the carried params is ignored: a shape change always
// returns the session to page 0 and invalidates all recorded cursors.
type ParamsChanged struct {
	Params pagination.Params
}

// NextPage requests the following page. Enabled only while HasMore is true.
type NextPage struct{}

// PrevPage requests the preceding page. Enabled only while the page index is
// positive.
type PrevPage struct{}

// Refresh re-fetches page 0 under the current shape with a fresh ledger.
// Callers must dispatch it after any successful mutation, which invalidates
// previously computed totals and cursors.
type Refresh struct{}

func (ParamsChanged) isEvent() {}
func (NextPage) isEvent()      {}
func (PrevPage) isEvent()      {}
func (Refresh) isEvent()       {}

// FetchEffect describes the asynchronous work a transition requires.
// It is a pure description: the session runtime materializes it.
type FetchEffect struct {
	// Params is the exact parameter snapshot to fetch under.
	Params pagination.Params

	// Generation tags the fetch for staleness detection on completion.
	Generation uint64

	// ResetLedger indicates the cursor ledger must be replaced before the
	// fetch: cursors recorded under the previous shape are not transferable.
	ResetLedger bool

	// RefreshTotal indicates the aggregate count must be re-queried.
	RefreshTotal bool
}
