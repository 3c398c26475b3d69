package entity

import "fmt"

// maxNameLength defines the maximum allowed length for item names to keep
// list payloads and index entries bounded.
const maxNameLength = 200

// maxDescriptionLength defines the maximum allowed length for item descriptions.
const maxDescriptionLength = 2000

// ValidateName validates an item name.
// Names are required and bounded in length; they are the primary search and
// sort key, so an empty name would make the item unreachable in sorted listings.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", maxNameLength),
		}
	}
	return nil
}

// ValidateDescription validates an item description. Descriptions are optional.
func ValidateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must not exceed %d characters", maxDescriptionLength),
		}
	}
	return nil
}

// ValidatePrice validates an item price.
// Zero is a valid price meaning "free"; it is not treated as unset.
func ValidatePrice(price float64) error {
	if price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// ValidateQuantity validates an item quantity. Quantities must be positive.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "must be positive"}
	}
	return nil
}
