package product_controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

func testCatalog() *catalog.Catalog {
	date := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}

	products := make([]models.Product, 0, 12)
	for i := 1; i <= 12; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("p%d", i),
			Name:        fmt.Sprintf("Organizer %d", i),
			Description: "A tidy home helper",
			Price:       float64(i) * 2,
			Category:    "kitchen",
			Subcategory: "organization",
			Rating:      4.0,
			Date:        date(fmt.Sprintf("2025-01-%02d", i)),
		})
	}
	// One bedroom product with a searchable name
	products = append(products, models.Product{
		ID: "p13", Name: "Linen Closet Guide", Description: "Fold and store linens",
		Price: 9.99, Category: "bedroom", Subcategory: "closet", Rating: 4.5,
	})
	return catalog.New(products)
}

func setupProductRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init(testCatalog(), storage.NewMemoryKV())

	router := gin.New()
	group := router.Group("/api/v1/store")
	group.Use(middleware.ShopperSession())
	group.GET("/products", GetStorefrontProducts)
	group.GET("/products/filters", GetFilterMetadata)
	group.GET("/products/:id", GetStorefrontProductByID)
	group.GET("/recently-viewed", GetRecentlyViewed)
	return router
}

type listResponse struct {
	Message string           `json:"message"`
	Data    []models.Product `json:"data"`
	Meta    *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func getProducts(t *testing.T, router *gin.Engine, query string) listResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetProductsFirstPage(t *testing.T) {
	router := setupProductRouter(t)

	resp := getProducts(t, router, "")
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, catalog.PageSize, resp.Meta.Limit)
	assert.Equal(t, 13, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Len(t, resp.Data, catalog.PageSize)
}

func TestGetProductsPageClamping(t *testing.T) {
	router := setupProductRouter(t)

	resp := getProducts(t, router, "?page=99")
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page, "out-of-range page clamps to the last page")
	assert.Len(t, resp.Data, 4)
}

func TestGetProductsFiltered(t *testing.T) {
	router := setupProductRouter(t)

	resp := getProducts(t, router, "?category=bedroom")
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p13", resp.Data[0].ID)

	resp = getProducts(t, router, "?q=linen")
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p13", resp.Data[0].ID)
}

func TestGetProductsSubcategoryWithoutCategoryIsIgnored(t *testing.T) {
	router := setupProductRouter(t)

	resp := getProducts(t, router, "?subcategory=closet")
	assert.Equal(t, 13, resp.Meta.Total, "subcategory without a category must not filter")
}

func TestGetProductsSorted(t *testing.T) {
	router := setupProductRouter(t)

	resp := getProducts(t, router, "?sortBy=price-asc")
	require.NotEmpty(t, resp.Data)
	for i := 1; i < len(resp.Data); i++ {
		assert.LessOrEqual(t, resp.Data[i-1].Price, resp.Data[i].Price)
	}

	// Unknown sort falls back to catalog order
	resp = getProducts(t, router, "?sortBy=bogus")
	assert.Equal(t, "p1", resp.Data[0].ID)
}

func TestGetProductByID(t *testing.T) {
	router := setupProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/p13", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Linen Closet Guide")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/store/products/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewingProductsFillsRecentlyViewed(t *testing.T) {
	router := setupProductRouter(t)
	session := ""

	view := func(id string) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/"+id, nil)
		if session != "" {
			req.AddCookie(&http.Cookie{Name: "shopper_session", Value: session})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "shopper_session" {
				session = cookie.Value
			}
		}
	}

	// View eight products; only the last six remain, most recent first
	for i := 1; i <= 8; i++ {
		view(fmt.Sprintf("p%d", i))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/recently-viewed", nil)
	req.AddCookie(&http.Cookie{Name: "shopper_session", Value: session})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 6)
	assert.Equal(t, "p8", resp.Data[0].ID)
	assert.Equal(t, "p3", resp.Data[5].ID)
}

func TestGetFilterMetadata(t *testing.T) {
	router := setupProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/filters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.FilterMetadata `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Categories, 2)
	assert.InDelta(t, 2.0, resp.Data.PriceRange.Min, 0.001)
	assert.InDelta(t, 24.0, resp.Data.PriceRange.Max, 0.001)
}
