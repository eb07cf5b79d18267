package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetWishlist godoc
// @Summary Get the wishlist
// @Description Retrieve the shopper's saved products.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse "Wishlist fetched successfully"
// @Router /store/wishlist [get]
func GetWishlist(c *gin.Context) {
	list, err := sessionWishlist(c)
	if err != nil {
		log.Printf("[store.wishlist] failed to load wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", list.Items()))
}
