package cart_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

func setupCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New([]models.Product{
		{ID: "p1", Name: "Pantry Label Pack", Price: 7.99, Category: "kitchen", Rating: 4.2},
		{ID: "p2", Name: "Bamboo Drawer Organizer", Price: 24.99, Category: "kitchen", Rating: 4.8},
	})
	Init(cat, storage.NewMemoryKV())

	router := gin.New()
	group := router.Group("/api/v1/store")
	group.Use(middleware.ShopperSession())
	group.GET("/cart", GetCart)
	group.DELETE("/cart", ClearCart)
	group.POST("/cart/items", AddToCart)
	group.PATCH("/cart/items/:productId", UpdateCartItem)
	group.DELETE("/cart/items/:productId", RemoveCartItem)
	return router
}

// do issues a request, replaying the session cookie so every call in a test
// hits the same shopper's cart.
func do(t *testing.T, router *gin.Engine, session *string, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if *session != "" {
		req.AddCookie(&http.Cookie{Name: "shopper_session", Value: *session})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "shopper_session" {
			*session = cookie.Value
		}
	}
	return w
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) models.CartSummary {
	t.Helper()
	var resp struct {
		Message string             `json:"message"`
		Data    models.CartSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestGetCartStartsEmpty(t *testing.T) {
	router := setupCartRouter(t)
	session := ""

	w := do(t, router, &session, http.MethodGet, "/api/v1/store/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	summary := cartData(t, w)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.Count)
}

func TestAddToCart(t *testing.T) {
	router := setupCartRouter(t)
	session := ""

	w := do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added to cart")

	// Same product again increments, second product adds a line
	do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)
	w = do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	summary := cartData(t, w)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 2*7.99+24.99, summary.Total, 0.001)
}

func TestAddUnknownProductReturns404(t *testing.T) {
	router := setupCartRouter(t)
	session := ""

	w := do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	router := setupCartRouter(t)
	session := ""
	do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)

	w := do(t, router, &session, http.MethodPatch, "/api/v1/store/cart/items/p1", `{"quantity":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	summary := cartData(t, w)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 4, summary.Items[0].Quantity)

	// Quantity zero removes the line
	w = do(t, router, &session, http.MethodPatch, "/api/v1/store/cart/items/p1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartData(t, w).Items)
}

func TestRemoveAndClearCart(t *testing.T) {
	router := setupCartRouter(t)
	session := ""
	do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)
	do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p2"}`)

	w := do(t, router, &session, http.MethodDelete, "/api/v1/store/cart/items/p1", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := cartData(t, w)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "p2", summary.Items[0].ProductID)

	w = do(t, router, &session, http.MethodDelete, "/api/v1/store/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartData(t, w).Items)
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	router := setupCartRouter(t)
	session := ""
	do(t, router, &session, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)

	// A plain GET on a new request sees the same cart
	w := do(t, router, &session, http.MethodGet, "/api/v1/store/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := cartData(t, w)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "p1", summary.Items[0].ProductID)
}

func TestCartsAreScopedPerSession(t *testing.T) {
	router := setupCartRouter(t)

	alice := ""
	do(t, router, &alice, http.MethodPost, "/api/v1/store/cart/items", `{"product_id":"p1"}`)

	bob := ""
	w := do(t, router, &bob, http.MethodGet, "/api/v1/store/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartData(t, w).Items, "a different shopper sees an empty cart")
}
