package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/recent"
)

// GetRecentlyViewed godoc
// @Summary Get recently viewed products
// @Description Retrieve the shopper's recently viewed products, most recent first, capped at 6.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Recently viewed fetched successfully"
// @Router /store/recently-viewed [get]
func GetRecentlyViewed(c *gin.Context) {
	tracker, err := recent.New(c.Request.Context(), sessionKV(c))
	if err != nil {
		log.Printf("[store.recent] failed to load list: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch recently viewed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recently viewed fetched successfully", tracker.Items()))
}
