package seller_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// SellerStats is the dashboard overview card.
type SellerStats struct {
	ProductCount  int        `json:"product_count"`
	AveragePrice  float64    `json:"average_price"`
	LatestListing *time.Time `json:"latest_listing,omitempty"`
	UnitsSold     int        `json:"units_sold"`
	Revenue       float64    `json:"revenue"`
}

// GetStats godoc
// @Summary Seller dashboard stats
// @Description Listing counts and sales totals for the logged-in seller.
// @Tags Seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Stats fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /seller/stats [get]
func GetStats(c *gin.Context) {
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

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats SellerStats
	err = config.StoreDB.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(price), 0), MAX(created_at)
		FROM products
		WHERE creator_id = $1`, creatorID).
		Scan(&stats.ProductCount, &stats.AveragePrice, &stats.LatestListing)
	if err != nil {
		log.Printf("[seller.stats] listing query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	// Sales are frozen into purchase line items, so join through the jsonb
	// items array against the seller's product ids.
	err = config.StoreDB.QueryRow(ctx, `
		SELECT COALESCE(SUM((item->>'quantity')::int), 0),
		       COALESCE(SUM((item->>'subtotal')::numeric), 0)
		FROM purchases, jsonb_array_elements(items) AS item
		WHERE item->>'product_id' IN (
			SELECT id::text FROM products WHERE creator_id = $1
		)`, creatorID).
		Scan(&stats.UnitsSold, &stats.Revenue)
	if err != nil {
		log.Printf("[seller.stats] sales query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}
