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

// CreateProduct godoc
// @Summary List a new product
// @Description Create a product owned by the logged-in seller.
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.SellerProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse "Product created"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /seller/products [post]
func CreateProduct(c *gin.Context) {
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

	var req models.SellerProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product := models.SellerProduct{
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Image:       req.Image,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[seller.products] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	filter_cache.Invalidate()

	log.Printf("[seller.products] product %s created by %s", product.ID, creatorID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
