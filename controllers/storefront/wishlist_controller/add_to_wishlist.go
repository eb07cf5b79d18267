package wishlist_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// AddToWishlist godoc
// @Summary Save a product for later
// @Description Add a catalog product to the wishlist. Adding a product already present is a silent no-op.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body models.AddWishlistItemRequest true "Product to save"
// @Success 200 {object} models.ApiResponse "Added to wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/wishlist/items [post]
func AddToWishlist(c *gin.Context) {
	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product, ok := cat.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	list, err := sessionWishlist(c)
	if err != nil {
		log.Printf("[store.wishlist] failed to load wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	added, err := list.Add(c.Request.Context(), product)
	if err != nil {
		log.Printf("[store.wishlist] failed to persist wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	// The message doubles as the storefront toast; a duplicate add stays
	// quiet on purpose.
	message := "Wishlist unchanged"
	if added {
		message = fmt.Sprintf("Added to wishlist: %s has been saved for later", product.Name)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, list.Items()))
}
