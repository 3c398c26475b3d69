package item

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/handler/http/respond"
	"fresh-catalog/internal/observability/logging"
	catUC "fresh-catalog/internal/usecase/catalog"
)

type CountHandler struct {
	Svc    *catUC.Service
	Logger *slog.Logger
}

// CountResponse carries the aggregate item count for an owner query.
// TotalPages is present only when the request supplied a page_size to
// divide the count by.
type CountResponse struct {
	Count      int64 `json:"count" example:"42"`
	TotalPages int   `json:"total_pages,omitempty" example:"9"`
}

// ServeHTTP returns the aggregate item count for an owner.
// @Summary      Count catalog items
// @Description  Returns the number of items matching the owner and optional lifecycle filter. Free-text search terms are deliberately ignored; two queries differing only in search term report the same count.
// @Tags         items
// @Produce      json
// @Param        owner  query    string  true   "Tenant key"
// @Param        status query    string  false  "Lifecycle filter"  Enums(all, available, expiring, expired)  default(all)
// @Param        page_size query int     false  "When set, the response includes total_pages for this page size"
// @Success      200 {object} CountResponse "Aggregate count"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      403 {string} string "Store rejected the query"
// @Failure      503 {string} string "Store unreachable"
// @Failure      500 {string} string "Server error"
// @Router       /items/count [get]
func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	ownerID := r.URL.Query().Get("owner")
	status := pagination.StatusFilterAll
	if s := r.URL.Query().Get("status"); s != "" {
		status = pagination.StatusFilter(s)
	}

	pageSize := 0
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > h.Svc.PaginationCfg.MaxPageSize {
			respond.SafeError(w, http.StatusBadRequest, &entity.ValidationError{
				Field:   "page_size",
				Message: fmt.Sprintf("must be between 1 and %d", h.Svc.PaginationCfg.MaxPageSize),
			})
			return
		}
		pageSize = parsed
	}

	count, err := h.Svc.TotalCount(ctx, ownerID, status)
	if err != nil {
		code, errType := listErrorCode(err)
		pagination.RecordError(errType)
		logger.Warn("Count query failed",
			"owner_id", ownerID,
			"status_filter", string(status),
			"error", err.Error())
		respond.SafeError(w, code, err)
		return
	}

	body := CountResponse{Count: count}
	if pageSize > 0 {
		body.TotalPages = pagination.CalculateTotalPages(count, pageSize)
	}
	respond.JSON(w, http.StatusOK, body)
}
