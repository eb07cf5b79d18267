package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/moghost88/cozy-corner-goods/models"
)

// PageSize is the fixed storefront grid size.
const PageSize = 9

// Derive applies the current filter state to a product list and returns the
// exact ordered subset to display. Pure: no side effects, deterministic for
// a given (products, state) pair.
func Derive(products []models.Product, state models.FilterState) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, state) {
			result = append(result, p)
		}
	}

	// Stable sort so equal keys keep catalog order. "featured" is the
	// incoming catalog order and needs no reordering at all.
	switch state.SortBy {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return dateOf(result[i]).After(dateOf(result[j]))
		})
	}

	return result
}

// matches reports whether a product passes every active filter.
func matches(p models.Product, state models.FilterState) bool {
	if q := strings.ToLower(state.SearchQuery); q != "" {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}
	if state.Category != "all" && p.Category != state.Category {
		return false
	}
	if state.Subcategory != "all" && p.Subcategory != state.Subcategory {
		return false
	}
	return p.Rating >= float64(state.MinRating)
}

// dateOf treats a missing date as the zero time so undated products sort
// as oldest under "newest".
func dateOf(p models.Product) time.Time {
	if p.Date == nil {
		return time.Time{}
	}
	return *p.Date
}

// Paginate slices one page out of a derived result set. Pages are 1-indexed;
// out-of-range requests clamp into [1, totalPages] instead of failing, and an
// empty result set still reports one (empty) page.
func Paginate(items []models.Product, page int) (pageItems []models.Product, clampedPage, totalPages int) {
	totalPages = (len(items) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}
