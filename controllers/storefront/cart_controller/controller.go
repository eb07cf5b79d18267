package cart_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/cart"
	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/storage"
)

var (
	cat    *catalog.Catalog
	baseKV storage.KV
)

// Init wires the catalog and the shopper-state store used by the cart
// endpoints.
func Init(c *catalog.Catalog, kv storage.KV) {
	cat = c
	baseKV = kv
}

// sessionCart hydrates the current shopper's cart.
func sessionCart(c *gin.Context) (*cart.Cart, error) {
	sid, _ := middleware.GetSessionIDFromContext(c)
	kv := storage.Namespaced(baseKV, "shopper:"+sid+":")
	return cart.New(c.Request.Context(), kv)
}
