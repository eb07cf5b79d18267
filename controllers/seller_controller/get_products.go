package seller_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetProducts godoc
// @Summary List the seller's products
// @Description Paginated list of products owned by the logged-in seller.
// @Tags Seller
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /seller/products [get]
func GetProducts(c *gin.Context) {
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

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.StoreGorm.WithContext(ctx)

	var total int64
	if err := db.Model(&models.SellerProduct{}).Where("creator_id = ?", creatorID).Count(&total).Error; err != nil {
		log.Printf("[seller.products] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	var products []models.SellerProduct
	if err := db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error; err != nil {
		log.Printf("[seller.products] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &models.Pagination{Page: page, Limit: limit, Total: int(total), TotalPages: totalPages}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}
