package enums

import "fmt"

// SortKey names the catalog orderings exposed by the storefront.
type SortKey string

const (
	SortKeyName      SortKey = "name"
	SortKeyPriceLow  SortKey = "price-low"
	SortKeyPriceHigh SortKey = "price-high"
	SortKeyRating    SortKey = "rating"
	SortKeyReviews   SortKey = "reviews"
)

var validSortKeys = []SortKey{
	SortKeyName,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyRating,
	SortKeyReviews,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey, defaulting to name order
// for empty input.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyName, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
