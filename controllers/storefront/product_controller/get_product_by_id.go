package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/recent"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one catalog product by id. Viewing a product records it on the shopper's recently-viewed list.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	product, ok := cat.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Recording the view is best-effort; a storage hiccup must not break
	// the product page.
	tracker, err := recent.New(c.Request.Context(), sessionKV(c))
	if err == nil {
		err = tracker.RecordView(c.Request.Context(), product)
	}
	if err != nil {
		log.Printf("[store.product] failed to record view for %s: %v", product.ID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
