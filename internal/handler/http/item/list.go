package item

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/handler/http/requestid"
	"fresh-catalog/internal/handler/http/respond"
	"fresh-catalog/internal/observability/logging"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

type ListHandler struct {
	Svc           *catUC.Service
	Sessions      *session.Registry
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP fetches one page of a tenant's catalog listing.
// @Summary      List catalog items (keyset pagination)
// @Description  Returns one page of the owner's items under the requested filter and sort. Pages are visited sequentially; requesting a page beyond the visited range fails with 400. A free-text search term is matched against item names and never affects the count endpoint.
// @Tags         items
// @Produce      json
// @Param        owner     query    string  true   "Tenant key"
// @Param        q         query    string  false  "Free-text search term (name substring, case-insensitive)"
// @Param        status    query    string  false  "Lifecycle filter"  Enums(all, available, expiring, expired)  default(all)
// @Param        sort      query    string  false  "Sort field"        Enums(name, price, createdAt)             default(name)
// @Param        dir       query    string  false  "Sort direction"    Enums(asc, desc)                          default(asc)
// @Param        page      query    int     false  "0-based page index" default(0) minimum(0)
// @Param        page_size query    int     false  "Items per page"     default(5)  minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[DTO] "Paginated item listing"
// @Failure      400 {string} string "Invalid query parameters or page out of visited range"
// @Failure      403 {string} string "Store rejected the query"
// @Failure      503 {string} string "Store unreachable"
// @Failure      500 {string} string "Server error"
// @Router       /items [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid listing parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pagination.LogRequest(logger, reqID, params)

	// One ledger per (owner, shape); the registry serializes access to it.
	ledger, release := h.Sessions.Acquire(params)
	result, err := h.Svc.FetchPage(ctx, params, ledger)
	release()
	if err != nil {
		code, errType := listErrorCode(err)
		pagination.RecordError(errType)
		pagination.LogError(logger, reqID, params, err, errType)
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, it := range result.Items {
		dtos = append(dtos, toDTO(it))
	}

	response := pagination.NewResponse(dtos, pagination.Metadata{
		Page:     params.PageIndex,
		PageSize: params.PageSize,
		HasMore:  result.HasMore,
	})

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.PageIndex)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, reqID, params, len(dtos), result.HasMore, duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}

func listErrorCode(err error) (code int, errType string) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, pagination.ErrPageOutOfRange):
		return http.StatusBadRequest, "out_of_range"
	case errors.Is(err, entity.ErrPermissionDenied):
		return http.StatusForbidden, "store"
	case errors.Is(err, entity.ErrUnavailable):
		return http.StatusServiceUnavailable, "store"
	}
	return http.StatusInternalServerError, "store"
}
