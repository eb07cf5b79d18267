package checkout_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetPurchases godoc
// @Summary Order history
// @Description List the user's past purchases, newest first.
// @Tags User - Checkout
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse "Purchases fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/purchases [get]
func GetPurchases(c *gin.Context) {
	userIDStr, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.StoreGorm.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Purchase{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		log.Printf("[user.purchases] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchases"))
		return
	}

	var purchases []models.Purchase
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&purchases).Error; err != nil {
		log.Printf("[user.purchases] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchases"))
		return
	}

	history := make([]models.PurchaseHistoryResponse, 0, len(purchases))
	for _, p := range purchases {
		count := 0
		for _, item := range p.Items {
			count += item.Quantity
		}
		history = append(history, models.PurchaseHistoryResponse{
			ID:             p.ID,
			PurchaseNumber: p.PurchaseNumber,
			Status:         p.Status,
			Total:          p.Total,
			ItemCount:      count,
			CreatedAt:      p.CreatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &models.Pagination{Page: page, Limit: limit, Total: int(total), TotalPages: totalPages}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Purchases fetched successfully", history, meta))
}
