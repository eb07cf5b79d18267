package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Description Delete the cart line for a product. Removing an absent product is a no-op.
// @Tags Storefront - Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Removed from cart"
// @Router /store/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[store.cart] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	if err := shopperCart.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		log.Printf("[store.cart] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from cart", shopperCart.Summary()))
}
