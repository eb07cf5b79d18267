package models

import "time"

// ═══════════════════════════════════════════════════════════
// Catalog Product (storefront-facing, static data)
// ═══════════════════════════════════════════════════════════

// Product is a single catalog record. The storefront catalog is fixed at
// startup; handlers never mutate a Product after init.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	Image       string     `json:"image"`
	Creator     string     `json:"creator"`
	Rating      float64    `json:"rating"`
	Downloads   int        `json:"downloads"`
	Featured    bool       `json:"featured,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// CategoryData describes one storefront category for the filter sidebar.
type CategoryData struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Count         int      `json:"count"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// PriceRange is the min/max price across the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata is everything the filter sidebar needs in one payload.
type FilterMetadata struct {
	Categories []CategoryData `json:"categories"`
	PriceRange PriceRange     `json:"price_range"`
}
