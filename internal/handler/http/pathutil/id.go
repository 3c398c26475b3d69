package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// maxIDLength bounds item ids; store ids are UUIDs (36 chars) but seed and
// test fixtures use shorter ones.
const maxIDLength = 64

// ExtractID extracts a document id from a URL path.
// It removes the specified prefix and validates the remaining segment:
// non-empty, no further path separators, bounded length.
//
// Example:
//
//	id, err := ExtractID("/items/550e8400-e29b-41d4-a716-446655440000", "/items/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || len(id) > maxIDLength || strings.ContainsAny(id, "/\\") {
		return "", ErrInvalidID
	}
	return id, nil
}
