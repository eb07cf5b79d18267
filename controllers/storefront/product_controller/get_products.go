package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve catalog products with optional search, category, subcategory, minimum rating and sorting. Fixed page size of 9.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description)"
// @Param category query string false "Category id" default(all)
// @Param subcategory query string false "Subcategory id (requires category)" default(all)
// @Param minRating query int false "Minimum rating (0-5)" default(0)
// @Param sortBy query string false "Sort mode (featured | price-asc | price-desc | newest)" default(featured)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	state := parseFilterState(c)

	derived := catalog.Derive(cat.Products(), state)
	pageItems, page, totalPages := catalog.Paginate(derived, parsePage(c))

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		pageItems,
		&models.Pagination{
			Page:       page,
			Limit:      catalog.PageSize,
			Total:      len(derived),
			TotalPages: totalPages,
		},
	))
}
