// Package catalog implements the filter and sort engine applied to portal
// catalog listings. All functions are pure: inputs are never mutated and the
// returned slice is a fresh ordered view.
package catalog

import (
	"sort"
	"strings"

	"portal/internal/models"
)

// Apply filters items by the query's search text and category, then orders
// the survivors by the query's sort key. The input slice is left untouched.
func Apply(items []models.Product, query models.ListQuery) []models.Product {
	filtered := Filter(items, query.Search, query.Category)
	Sort(filtered, query.Sort)
	return filtered
}

// Filter returns the items matching both the search text and the category.
// An empty search matches everything; the "All" category (or an empty one)
// matches everything. The result preserves catalog order.
func Filter(items []models.Product, search, category string) []models.Product {
	result := make([]models.Product, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, item := range items {
		if matchesSearch(item, needle) && matchesCategory(item, category) {
			result = append(result, item)
		}
	}
	return result
}

func matchesSearch(item models.Product, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{item.Name, item.Author, item.Publisher} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(item models.Product, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return item.Category == category
}

// Sort orders items in place by the given key. Every ordering is stable:
// items comparing equal keep their relative catalog order, which makes
// listings reproducible when products share a score, price, or rating.
func Sort(items []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case models.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case models.SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].IsNew && !items[j].IsNew
		})
	default: // SortFeatured
		sort.SliceStable(items, func(i, j int) bool {
			return featuredScore(items[i]) > featuredScore(items[j])
		})
	}
}

// featuredScore ranks trending items above new arrivals above the rest.
func featuredScore(item models.Product) int {
	score := 0
	if item.IsTrending {
		score += 2
	}
	if item.IsNew {
		score++
	}
	return score
}
