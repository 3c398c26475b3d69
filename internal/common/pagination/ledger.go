package pagination

import "errors"

// Cursor is an opaque store-provided marker identifying a position in a
// specific sort order. The empty cursor is the start-of-data sentinel.
// Cursors are only meaningful under the query shape they were produced for.
type Cursor string

// ErrPageOutOfRange indicates an attempt to read a cursor for a page that has
// not been visited yet. Pages are visited sequentially (next/prev only);
// random access past the recorded history must fail loudly rather than
// silently returning stale data.
var ErrPageOutOfRange = errors.New("page index out of ledger range")

// Ledger is an ordered, append-only record of pagination cursors keyed by
// page index. Entry i holds the cursor required to fetch page i via a
// "start after" constraint; entry 0 is always the empty start sentinel.
//
// Growth is restricted to Append and the only other mutation is Reset, which
// must be invoked whenever the query shape changes. Ledger is not safe for
// concurrent use; callers serialize access (the session layer owns one
// ledger per pagination session).
type Ledger struct {
	cursors []Cursor
}

// NewLedger creates a ledger containing only the start-of-data sentinel.
func NewLedger() *Ledger {
	return &Ledger{cursors: []Cursor{""}}
}

// Reset discards all recorded cursors, returning the ledger to its initial
// single-sentinel state.
func (l *Ledger) Reset() {
	l.cursors = []Cursor{""}
}

// Get returns the cursor required to fetch page i.
// Returns ErrPageOutOfRange if page i has not been reached yet.
func (l *Ledger) Get(i int) (Cursor, error) {
	if i < 0 || i >= len(l.cursors) {
		return "", ErrPageOutOfRange
	}
	return l.cursors[i], nil
}

// Append records the cursor for the next unvisited page.
// It is called exactly once per page boundary, the first time a page is
// fetched with more data remaining behind it.
func (l *Ledger) Append(c Cursor) {
	l.cursors = append(l.cursors, c)
}

// Len returns the number of recorded entries, i.e. the number of pages that
// can currently be fetched without extending the ledger.
func (l *Ledger) Len() int {
	return len(l.cursors)
}
