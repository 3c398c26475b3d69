package item

import (
	"log/slog"
	"net/http"

	"fresh-catalog/internal/common/pagination"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

// Register registers all item-related HTTP handlers with the given mux.
// Exact patterns (/items/count, /items/classify) take precedence over the
// /items/ subtree, so those reserved path segments never resolve as item IDs.
func Register(mux *http.ServeMux, svc *catUC.Service, sessions *session.Registry, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /items", ListHandler{
		Svc:           svc,
		Sessions:      sessions,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /items/count", CountHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /items/classify", ClassifyHandler{Svc: svc})
	mux.Handle("GET    /items/", GetHandler{Svc: svc})

	mux.Handle("POST   /items", CreateHandler{Svc: svc, Sessions: sessions})
	mux.Handle("PUT    /items/", UpdateHandler{Svc: svc, Sessions: sessions})
	mux.Handle("DELETE /items/", DeleteHandler{Svc: svc, Sessions: sessions})
}
