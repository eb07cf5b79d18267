package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// UpdateCartItem godoc
// @Summary Update a cart line quantity
// @Description Set an absolute quantity for a cart line. A quantity of 0 or below removes the line. Unknown products are a no-op.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param quantity body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/cart/items/{productId} [patch]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[store.cart] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	if err := shopperCart.UpdateQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity); err != nil {
		log.Printf("[store.cart] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", shopperCart.Summary()))
}
