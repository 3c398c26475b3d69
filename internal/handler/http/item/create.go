package item

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fresh-catalog/internal/domain/entity"
	httph "fresh-catalog/internal/handler/http"
	"fresh-catalog/internal/handler/http/respond"
	catUC "fresh-catalog/internal/usecase/catalog"
	"fresh-catalog/internal/usecase/session"
)

type CreateHandler struct {
	Svc      *catUC.Service
	Sessions *session.Registry
}

// CreateResponse carries the store-assigned id of a newly created item.
type CreateResponse struct {
	ID string `json:"id" example:"a3f1c2d4-0000-4000-8000-000000000001"`
}

// ServeHTTP creates a new catalog item.
// @Summary      Create catalog item
// @Description  Creates a new item. The lifecycle status is derived from the expiry date at the moment of the write and persisted alongside the item. An absent expiry date classifies as available.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body object true "Item payload"
// @Success      201 {object} CreateResponse "Created"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      503 {string} string "Store unreachable"
// @Failure      500 {string} string "Server error"
// @Router       /items [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID     string  `json:"owner_id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
		ExpiryDate  *string `json:"expiry_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ExpiryDate:  expiry,
	})
	if err != nil {
		httph.RecordCatalogWrite("create", false)
		code := http.StatusBadRequest
		if errors.Is(err, entity.ErrUnavailable) {
			code = http.StatusServiceUnavailable
		}
		respond.SafeError(w, code, err)
		return
	}

	// A new document shifts listing positions; recorded cursors for this
	// owner are no longer trustworthy.
	h.Sessions.Invalidate(req.OwnerID)
	httph.RecordCatalogWrite("create", true)

	respond.JSON(w, http.StatusCreated, CreateResponse{ID: id})
}

func parseExpiry(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, errors.New("expiry_date must be in RFC3339 format")
	}
	return &t, nil
}
