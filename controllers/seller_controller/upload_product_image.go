package seller_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/services"
)

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Upload an image to Cloudinary and return the hosted URL for use in a product listing.
// @Tags Seller
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} models.ApiResponse "Image uploaded"
// @Failure 400 {object} models.ApiResponse "Missing image file"
// @Failure 503 {object} models.ApiResponse "Image upload not configured"
// @Router /seller/products/upload-image [post]
func UploadProductImage(c *gin.Context) {
	cloudinaryService := services.GetCloudinaryService()
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image upload not configured"))
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	defer file.Close()

	url, err := cloudinaryService.UploadImage(c.Request.Context(), file, "", "cozy-corner/products")
	if err != nil {
		log.Printf("[seller.upload] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded", gin.H{"url": url}))
}
