package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Description Delete a saved product. Removing an absent product is a no-op.
// @Tags Storefront - Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Removed from wishlist"
// @Router /store/wishlist/items/{productId} [delete]
func RemoveFromWishlist(c *gin.Context) {
	list, err := sessionWishlist(c)
	if err != nil {
		log.Printf("[store.wishlist] failed to load wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	removed, err := list.Remove(c.Request.Context(), c.Param("productId"))
	if err != nil {
		log.Printf("[store.wishlist] failed to persist wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Wishlist unchanged"
	if removed {
		message = "Removed from wishlist: item removed from your wishlist"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, list.Items()))
}
