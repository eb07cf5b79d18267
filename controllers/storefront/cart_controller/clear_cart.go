package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// ClearCart godoc
// @Summary Clear the shopping cart
// @Description Remove every line from the shopper's cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[store.cart] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	if err := shopperCart.Clear(c.Request.Context()); err != nil {
		log.Printf("[store.cart] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", shopperCart.Summary()))
}
