package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	filter_cache "github.com/moghost88/cozy-corner-goods/cache"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetFilterMetadata godoc
// @Summary Get filter sidebar metadata
// @Description Retrieve categories with counts and subcategories plus the catalog price range.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Router /store/products/filters [get]
func GetFilterMetadata(c *gin.Context) {
	metadata, ok := filter_cache.GetMetadata()
	if !ok {
		metadata = cat.Categories()
		filter_cache.SetMetadata(metadata)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}
