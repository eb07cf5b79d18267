// Package catalog holds the static storefront catalog and the pure
// filter/sort/paginate logic that derives the visible product list from it.
package catalog

import (
	"sort"

	"github.com/moghost88/cozy-corner-goods/models"
)

// Catalog is a read-only, in-memory product list fixed at startup.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New builds a catalog from a product list. Catalog order is preserved; the
// "featured" sort relies on it.
func New(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	return New(builtinProducts())
}

// Products returns the catalog in its original order. Callers must not
// mutate the returned slice.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns filter sidebar metadata: every category with its
// product count and subcategories, plus the overall price range.
func (c *Catalog) Categories() models.FilterMetadata {
	counts := map[string]int{}
	subs := map[string]map[string]bool{}
	var order []string
	meta := models.FilterMetadata{}

	for i, p := range c.products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
			subs[p.Category] = map[string]bool{}
		}
		counts[p.Category]++
		if p.Subcategory != "" {
			subs[p.Category][p.Subcategory] = true
		}
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}

	for _, cat := range order {
		data := models.CategoryData{ID: cat, Name: displayName(cat), Count: counts[cat]}
		for sub := range subs[cat] {
			data.Subcategories = append(data.Subcategories, sub)
		}
		sort.Strings(data.Subcategories)
		meta.Categories = append(meta.Categories, data)
	}
	return meta
}
