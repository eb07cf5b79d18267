package product_controller

import (
	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/storage"
)

var (
	cat    *catalog.Catalog
	baseKV storage.KV
)

// Init wires the catalog and the shopper-state store used by the storefront
// product endpoints.
func Init(c *catalog.Catalog, kv storage.KV) {
	cat = c
	baseKV = kv
}
