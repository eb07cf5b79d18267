package seller_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	filter_cache "github.com/moghost88/cozy-corner-goods/cache"
	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product. Only the owning seller may edit it.
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param product body models.UpdateSellerProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Product updated"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /seller/products/{productId} [patch]
func UpdateProduct(c *gin.Context) {
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

	var req models.UpdateSellerProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.StoreGorm.WithContext(ctx)

	var product models.SellerProduct
	err = db.Where("id = ? AND creator_id = ?", productID, creatorID).First(&product).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[seller.products] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Subcategory != nil {
		updates["subcategory"] = req.Subcategory
	}
	if req.Image != nil {
		updates["image"] = req.Image
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := db.Model(&product).Updates(updates).Error; err != nil {
		log.Printf("[seller.products] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product))
}
