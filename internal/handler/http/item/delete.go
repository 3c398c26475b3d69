package item

import (
	"errors"
	"net/http"

	"fresh-catalog/internal/domain/entity"
	httph "fresh-catalog/internal/handler/http"
	"fresh-catalog/internal/handler/http/pathutil"
	"fresh-catalog/internal/handler/http/respond"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

type DeleteHandler struct {
	Svc      *catUC.Service
	Sessions *session.Registry
}

// ServeHTTP removes a catalog item.
// @Summary      Delete catalog item
// @Description  Removes a single item. No cascading effects; clients holding counts or page positions should refresh after the write.
// @Tags         items
// @Param        id path string true "Item ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      404 {string} string "Not found - item does not exist"
// @Failure      503 {string} string "Store unreachable"
// @Failure      500 {string} string "Server error"
// @Router       /items/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// Read the owner before the document disappears so its cursor ledgers
	// can be dropped after the write.
	var ownerID string
	if it, err := h.Svc.Get(r.Context(), id); err == nil {
		ownerID = it.OwnerID
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		httph.RecordCatalogWrite("delete", false)
		code := http.StatusInternalServerError
		if errors.Is(err, catUC.ErrInvalidItemID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, catUC.ErrItemNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, entity.ErrUnavailable) {
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}
	httph.RecordCatalogWrite("delete", true)

	if ownerID != "" {
		h.Sessions.Invalidate(ownerID)
	}

	w.WriteHeader(http.StatusNoContent)
}
