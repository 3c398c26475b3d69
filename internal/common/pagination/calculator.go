package pagination

// CalculateTotalPages calculates the total number of pages based on the
// server-side aggregate count and page size. Uses ceiling division so the
// final partial page is included.
//
// The aggregate count only reflects store-evaluable filters (owner, status);
// when a search term is active the real number of matching pages may be
// lower, which is why page navigation is driven by HasMore rather than this
// value.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < pageSize, returns 1
//   - Otherwise, returns ceil(total / pageSize)
func CalculateTotalPages(total int64, pageSize int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + pageSize - 1) / pageSize
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
