package models

import "fmt"

// SortKey selects the ordering applied to a filtered catalog listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseSortKey validates a raw sort parameter. An empty value defaults to
// the featured ordering.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return SortKey(raw), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", raw)
	}
}

// ListQuery carries the user-supplied filter and sort parameters for a
// catalog listing. It is derived from request input on every call, never
// stored.
type ListQuery struct {
	Search   string  `json:"search"`
	Category string  `json:"category"` // CategoryAll (or empty) matches everything
	Sort     SortKey `json:"sort"`
}
