package item

import (
	"errors"
	"net/http"

	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/handler/http/pathutil"
	"fresh-catalog/internal/handler/http/respond"
	catUC "fresh-catalog/internal/usecase/catalog"
)

type GetHandler struct{ Svc *catUC.Service }

// ServeHTTP returns a single catalog item.
// @Summary      Get catalog item
// @Description  Returns the item with the given ID, including its persisted lifecycle status snapshot.
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} DTO "Item detail"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      404 {string} string "Not found - item does not exist"
// @Failure      503 {string} string "Store unreachable"
// @Failure      500 {string} string "Server error"
// @Router       /items/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	it, err := h.Svc.Get(r.Context(), id)
	if err != nil {
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

	respond.JSON(w, http.StatusOK, toDTO(it))
}
