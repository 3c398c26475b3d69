package pagination

// Metadata contains pagination metadata included in API responses.
// Keyset pagination reports end-of-data via HasMore rather than a total page
// count: the total aggregate cannot account for client-side text filtering.
type Metadata struct {
	Page     int  `json:"page"`      // Current page index (0-based)
	PageSize int  `json:"page_size"` // Requested items per page
	HasMore  bool `json:"has_more"`  // Whether another page can be fetched
}
