package seller_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	filter_cache "github.com/moghost88/cozy-corner-goods/cache"
	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a product listing. Only the owning seller may delete it.
// @Tags Seller
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product deleted"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /seller/products/{productId} [delete]
func DeleteProduct(c *gin.Context) {
	userIDStr, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	creatorID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND creator_id = ?", productID, creatorID).
		Delete(&models.SellerProduct{})
	if result.Error != nil {
		log.Printf("[seller.products] delete failed: %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	filter_cache.Invalidate()

	log.Printf("[seller.products] product %s deleted by %s", productID, creatorID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}
