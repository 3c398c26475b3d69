// Package item provides HTTP handlers for catalog item endpoints.
// It includes handlers for listing (keyset-paginated), counting, classifying,
// creating, updating, and deleting items.
package item

import (
	"time"

	"fresh-catalog/internal/domain/entity"
)

// DTO represents the JSON structure for catalog item data transfer.
type DTO struct {
	ID          string     `json:"id" example:"a3f1c2d4-0000-4000-8000-000000000001"`
	OwnerID     string     `json:"owner_id" example:"tenant-1"`
	Name        string     `json:"name" example:"Organic Whole Milk 1L"`
	Description string     `json:"description" example:"Locally sourced, pasteurized"`
	Price       float64    `json:"price" example:"2.49"`
	Quantity    int        `json:"quantity" example:"12"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty" example:"2026-09-03T00:00:00Z"`
	Status      string     `json:"status" example:"expiring"`
	CreatedAt   time.Time  `json:"created_at" example:"2026-08-20T12:00:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2026-08-28T09:30:00Z"`
}

func toDTO(it *entity.Item) DTO {
	return DTO{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		ExpiryDate:  it.ExpiryDate,
		Status:      string(it.LifecycleStatus),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
