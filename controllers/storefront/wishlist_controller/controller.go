package wishlist_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/storage"
	"github.com/moghost88/cozy-corner-goods/wishlist"
)

var (
	cat    *catalog.Catalog
	baseKV storage.KV
)

// Init wires the catalog and the shopper-state store used by the wishlist
// endpoints.
func Init(c *catalog.Catalog, kv storage.KV) {
	cat = c
	baseKV = kv
}

// sessionWishlist hydrates the current shopper's wishlist.
func sessionWishlist(c *gin.Context) (*wishlist.Wishlist, error) {
	sid, _ := middleware.GetSessionIDFromContext(c)
	kv := storage.Namespaced(baseKV, "shopper:"+sid+":")
	return wishlist.New(c.Request.Context(), kv)
}
