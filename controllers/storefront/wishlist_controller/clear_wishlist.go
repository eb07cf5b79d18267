package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// ClearWishlist godoc
// @Summary Clear the wishlist
// @Description Remove every saved product.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse "Wishlist cleared"
// @Router /store/wishlist [delete]
func ClearWishlist(c *gin.Context) {
	list, err := sessionWishlist(c)
	if err != nil {
		log.Printf("[store.wishlist] failed to load wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	if err := list.Clear(c.Request.Context()); err != nil {
		log.Printf("[store.wishlist] failed to persist wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", list.Items()))
}
