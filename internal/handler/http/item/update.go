package item

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fresh-catalog/internal/domain/entity"
	httph "fresh-catalog/internal/handler/http"
	"fresh-catalog/internal/handler/http/pathutil"
	"fresh-catalog/internal/handler/http/respond"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

type UpdateHandler struct {
	Svc      *catUC.Service
	Sessions *session.Registry
}

// ServeHTTP updates an existing catalog item.
// @Summary      Update catalog item
// @Description  Partially updates an item. Absent fields keep their persisted values. When the payload carries an expiry date the lifecycle status is recomputed against the current instant; otherwise the persisted snapshot is left untouched.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path string true "Item ID"
// @Param        item body object true "Fields to update"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - item does not exist"
// @Failure      503 {string} string "Store unreachable"
// @Router       /items/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Quantity    *int     `json:"quantity"`
		ExpiryDate  *string  `json:"expiry_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var expiry *time.Time
	if req.ExpiryDate != nil {
		expiry, err = parseExpiry(req.ExpiryDate)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
	}

	err = h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ExpiryDate:  expiry,
	})
	if err != nil {
		httph.RecordCatalogWrite("update", false)
		code := http.StatusBadRequest
		if errors.Is(err, catUC.ErrItemNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, entity.ErrUnavailable) {
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}
	httph.RecordCatalogWrite("update", true)

	// A write may move the document within sort orders; drop the owner's
	// recorded cursors. The owner is read back because the request body
	// does not carry it.
	if it, err := h.Svc.Get(r.Context(), id); err == nil {
		h.Sessions.Invalidate(it.OwnerID)
	}

	w.WriteHeader(http.StatusNoContent)
}
