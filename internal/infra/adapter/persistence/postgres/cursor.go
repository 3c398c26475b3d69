package postgres

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
)

// cursorKey is the keyset position of one item row. All three sortable
// values are carried so a cursor stays decodable regardless of which sort
// field produced it; the id breaks ties between equal sort values.
type cursorKey struct {
	Name      string    `json:"n"`
	Price     float64   `json:"p"`
	CreatedAt time.Time `json:"c"`
	ID        string    `json:"id"`
}

// encodeCursor produces the opaque cursor marking the position of an item.
func encodeCursor(item *entity.Item) pagination.Cursor {
	key := cursorKey{
		Name:      item.Name,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		ID:        item.ID,
	}
	raw, err := json.Marshal(key)
	if err != nil {
		// cursorKey contains only marshalable fields.
		panic(fmt.Sprintf("encodeCursor: %v", err))
	}
	return pagination.Cursor(base64.RawURLEncoding.EncodeToString(raw))
}

// decodeCursor parses an opaque cursor back into a keyset position.
func decodeCursor(c pagination.Cursor) (cursorKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return cursorKey{}, fmt.Errorf("decodeCursor: %w: %w", entity.ErrInvalidInput, err)
	}
	var key cursorKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return cursorKey{}, fmt.Errorf("decodeCursor: %w: %w", entity.ErrInvalidInput, err)
	}
	return key, nil
}

// sortValue returns the keyset comparison value of a cursor for a sort field.
func (k cursorKey) sortValue(field pagination.SortField) interface{} {
	switch field {
	case pagination.SortByPrice:
		return k.Price
	case pagination.SortByCreatedAt:
		return k.CreatedAt
	default:
		return k.Name
	}
}
