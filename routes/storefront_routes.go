package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/moghost88/cozy-corner-goods/controllers/storefront/cart_controller"
	"github.com/moghost88/cozy-corner-goods/controllers/storefront/product_controller"
	"github.com/moghost88/cozy-corner-goods/controllers/storefront/wishlist_controller"
	"github.com/moghost88/cozy-corner-goods/middleware"
)

// SetupStorefrontRoutes wires the public shopping surface. Everything here
// is keyed to the shopper session cookie rather than a login.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.ShopperSession())

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)
		products.GET("/filters", product_controller.GetFilterMetadata)
		products.GET("/:id", product_controller.GetStorefrontProductByID)
	}

	store.GET("/recently-viewed", product_controller.GetRecentlyViewed)

	cart := store.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddToCart)
		cart.PATCH("/items/:productId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:productId", cart_controller.RemoveCartItem)
	}

	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.DELETE("", wishlist_controller.ClearWishlist)
		wishlist.POST("/items", wishlist_controller.AddToWishlist)
		wishlist.DELETE("/items/:productId", wishlist_controller.RemoveFromWishlist)
	}
}
