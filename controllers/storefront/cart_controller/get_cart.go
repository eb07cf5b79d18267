package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetCart godoc
// @Summary Get the shopping cart
// @Description Retrieve the shopper's cart lines with derived count and total.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[store.cart] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", shopperCart.Summary()))
}
