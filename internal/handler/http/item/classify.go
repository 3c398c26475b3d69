package item

import (
	"errors"
	"net/http"
	"time"

	"fresh-catalog/internal/handler/http/respond"
	catUC "fresh-catalog/internal/usecase/catalog"
)

type ClassifyHandler struct{ Svc *catUC.Service }

// ClassifyResponse carries a lifecycle status derived from an expiry date.
type ClassifyResponse struct {
	Status string `json:"status" example:"expiring"`
}

// ServeHTTP derives a lifecycle status from an expiry date without touching
// the store. Clients use it to render a live badge independent of the
// persisted write-time snapshot.
// @Summary      Classify expiry date
// @Description  Derives the lifecycle status for an expiry date at the current instant. Day distances are rounded up, so any future fraction of a day counts as a full remaining day. An absent expiry date classifies as available.
// @Tags         items
// @Produce      json
// @Param        expiry query string false "Expiry date (RFC3339); absent means no expiry"
// @Success      200 {object} ClassifyResponse "Derived status"
// @Failure      400 {string} string "Bad request - malformed expiry date"
// @Router       /items/classify [get]
func (h ClassifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var expiry *time.Time
	if raw := r.URL.Query().Get("expiry"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("expiry must be in RFC3339 format"))
			return
		}
		expiry = &t
	}

	status := h.Svc.Classify(expiry, time.Now())
	respond.JSON(w, http.StatusOK, ClassifyResponse{Status: string(status)})
}
