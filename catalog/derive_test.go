package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/models"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Bamboo Drawer Organizer", Description: "Modular bamboo trays", Price: 24.99, Category: "kitchen", Subcategory: "organization", Rating: 4.8, Date: day("2025-03-01")},
		{ID: "p2", Name: "Pantry Label Pack", Description: "Printable pantry labels", Price: 7.99, Category: "kitchen", Subcategory: "organization", Rating: 4.2, Date: day("2025-05-10")},
		{ID: "p3", Name: "Meal Prep Planner", Description: "Weekly meal prep workbook", Price: 12.50, Category: "kitchen", Subcategory: "meal-prep", Rating: 3.9, Date: day("2024-11-20")},
		{ID: "p4", Name: "Linen Closet Guide", Description: "Fold and store linens", Price: 9.99, Category: "bedroom", Subcategory: "closet", Rating: 4.5, Date: day("2025-01-15")},
		{ID: "p5", Name: "Evening Wind-Down Kit", Description: "Sleep routine cards", Price: 14.99, Category: "bedroom", Subcategory: "sleep", Rating: 3.1},
		{ID: "p6", Name: "Eco Cleaning Checklist", Description: "Room by room cleaning plan", Price: 5.99, Category: "cleaning", Subcategory: "eco", Rating: 4.9, Date: day("2025-06-02")},
	}
}

func TestDeriveDefaultStateReturnsEverything(t *testing.T) {
	products := fixtureProducts()
	result := Derive(products, models.DefaultFilterState())

	require.Len(t, result, len(products))
	for i, p := range products {
		assert.Equal(t, p.ID, result[i].ID, "featured sort must keep catalog order")
	}
}

func TestDeriveSearchMatchesNameAndDescription(t *testing.T) {
	products := fixtureProducts()

	state := models.DefaultFilterState()
	state.SearchQuery = "PANTRY"
	result := Derive(products, state)
	require.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)

	// Description-only match
	state.SearchQuery = "room by room"
	result = Derive(products, state)
	require.Len(t, result, 1)
	assert.Equal(t, "p6", result[0].ID)

	state.SearchQuery = "no such thing"
	assert.Empty(t, Derive(products, state))
}

func TestDeriveCategoryAndSubcategory(t *testing.T) {
	products := fixtureProducts()

	state := models.DefaultFilterState()
	state.SetCategory("kitchen")
	result := Derive(products, state)
	require.Len(t, result, 3)

	state.SetSubcategory("organization")
	result = Derive(products, state)
	require.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, "kitchen", p.Category)
		assert.Equal(t, "organization", p.Subcategory)
	}
}

func TestDeriveMinRating(t *testing.T) {
	products := fixtureProducts()

	state := models.DefaultFilterState()
	state.SetMinRating(4)
	result := Derive(products, state)
	require.Len(t, result, 4)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}
}

func TestDeriveCombinedFiltersAreASubset(t *testing.T) {
	products := fixtureProducts()
	byID := map[string]bool{}
	for _, p := range products {
		byID[p.ID] = true
	}

	state := models.DefaultFilterState()
	state.SearchQuery = "e"
	state.SetCategory("bedroom")
	state.SetMinRating(3)
	result := Derive(products, state)

	for _, p := range result {
		assert.True(t, byID[p.ID], "derived result may only contain catalog products")
		assert.Equal(t, "bedroom", p.Category)
	}
}

func TestDerivePriceSorts(t *testing.T) {
	products := fixtureProducts()

	state := models.DefaultFilterState()
	state.SortBy = models.SortPriceAsc
	result := Derive(products, state)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
	}

	state.SortBy = models.SortPriceDesc
	result = Derive(products, state)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestDerivePriceSortIsStable(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "A", Price: 10, Rating: 4},
		{ID: "b", Name: "B", Price: 10, Rating: 4},
		{ID: "c", Name: "C", Price: 10, Rating: 4},
	}

	state := models.DefaultFilterState()
	state.SortBy = models.SortPriceAsc
	result := Derive(products, state)

	require.Len(t, result, 3)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
	assert.Equal(t, "c", result[2].ID)
}

func TestDeriveNewestPutsUndatedLast(t *testing.T) {
	products := fixtureProducts()

	state := models.DefaultFilterState()
	state.SortBy = models.SortNewest
	result := Derive(products, state)

	require.Len(t, result, len(products))
	assert.Equal(t, "p6", result[0].ID)
	assert.Equal(t, "p5", result[len(result)-1].ID, "product without a date sorts as oldest")
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	state := models.DefaultFilterState()
	state.SortBy = models.SortPriceDesc
	_ = Derive(products, state)

	assert.Equal(t, "p1", products[0].ID, "input slice order must be untouched")
}

func TestPaginate(t *testing.T) {
	items := make([]models.Product, 20)
	for i := range items {
		items[i] = models.Product{ID: fmt.Sprintf("p%d", i)}
	}

	page, n, total := Paginate(items, 1)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, total)
	require.Len(t, page, PageSize)
	assert.Equal(t, "p0", page[0].ID)

	page, n, total = Paginate(items, 3)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "p18", page[0].ID)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := make([]models.Product, 10)

	_, n, total := Paginate(items, 99)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, n, "beyond the end clamps to the last page")

	_, n, _ = Paginate(items, 0)
	assert.Equal(t, 1, n, "below one clamps to the first page")

	_, n, _ = Paginate(items, -5)
	assert.Equal(t, 1, n)
}

func TestPaginateEmptyResultHasOnePage(t *testing.T) {
	page, n, total := Paginate(nil, 1)
	assert.Empty(t, page)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, total)
}
