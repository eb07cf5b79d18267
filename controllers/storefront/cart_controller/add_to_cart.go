package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Add one unit of a catalog product. An existing line is incremented; name, price and image are snapshotted at add-time.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.ApiResponse "Added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/cart/items [post]
func AddToCart(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product, ok := cat.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[store.cart] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	if err := shopperCart.Add(c.Request.Context(), product); err != nil {
		log.Printf("[store.cart] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to cart", shopperCart.Summary()))
}
