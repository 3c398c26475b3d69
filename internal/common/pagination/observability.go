package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a page fetch request with structured fields.
// This enables request tracing and debugging.
func LogRequest(logger *slog.Logger, requestID string, params Params) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"owner_id", params.OwnerID,
		"page", params.PageIndex,
		"page_size", params.PageSize,
		"status_filter", string(params.Status),
		"sort", string(params.SortField),
		"dir", string(params.SortDir),
		"has_search", params.Search != "")
}

// LogResponse logs a page fetch response with duration and status.
// This enables performance monitoring and debugging.
func LogResponse(logger *slog.Logger, requestID string, params Params, returnedCount int, hasMore bool, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"page", params.PageIndex,
		"page_size", params.PageSize,
		"returned_count", returnedCount,
		"has_more", hasMore,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID string, params Params, err error, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"page", params.PageIndex,
		"page_size", params.PageSize,
		"error", err.Error(),
		"error_type", errorType)
}
