package models

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
)

// ParseSortOption maps a raw query value to a SortOption, falling back to
// the featured (catalog-order) default for anything unrecognised.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return SortOption(raw)
	default:
		return SortFeatured
	}
}

// FilterState holds the current storefront filter selection. It is built
// fresh from query parameters on every request and is never persisted.
type FilterState struct {
	SearchQuery string
	Category    string
	Subcategory string
	MinRating   int
	SortBy      SortOption
}

// DefaultFilterState returns the state a fresh session starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		Category:    "all",
		Subcategory: "all",
		MinRating:   0,
		SortBy:      SortFeatured,
	}
}

// SetCategory switches the active category. A subcategory only makes sense
// under its owning category, so any category change resets it to "all".
func (f *FilterState) SetCategory(category string) {
	if category == "" {
		category = "all"
	}
	f.Category = category
	f.Subcategory = "all"
}

// SetSubcategory selects a subcategory. Ignored while no category is active.
func (f *FilterState) SetSubcategory(subcategory string) {
	if f.Category == "all" {
		f.Subcategory = "all"
		return
	}
	if subcategory == "" {
		subcategory = "all"
	}
	f.Subcategory = subcategory
}

// SetMinRating clamps the minimum rating into the valid 0 to 5 range.
func (f *FilterState) SetMinRating(rating int) {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	f.MinRating = rating
}

// Reset restores every field to its default.
func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}
