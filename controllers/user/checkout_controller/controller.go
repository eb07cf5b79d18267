package checkout_controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/cart"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/storage"
)

var baseKV storage.KV

// Init wires the shopper-state store so checkout can drain the session cart.
func Init(kv storage.KV) {
	baseKV = kv
}

// sessionCart hydrates the cart the shopper built up before checking out.
func sessionCart(c *gin.Context) (*cart.Cart, error) {
	sid, _ := middleware.GetSessionIDFromContext(c)
	kv := storage.Namespaced(baseKV, "shopper:"+sid+":")
	return cart.New(c.Request.Context(), kv)
}

// newPurchaseNumber mints a human-readable order number. Uniqueness is
// enforced by the database index; the uuid suffix makes collisions
// effectively impossible.
func newPurchaseNumber() string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("CCG-%s-%s", time.Now().Format("20060102"), suffix)
}
