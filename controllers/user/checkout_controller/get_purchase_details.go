package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
)

// GetPurchaseDetails godoc
// @Summary Purchase details
// @Description Fetch one purchase with its frozen line items. Only the buyer can see it.
// @Tags User - Checkout
// @Produce json
// @Security BearerAuth
// @Param purchaseId path string true "Purchase ID"
// @Success 200 {object} models.ApiResponse "Purchase fetched successfully"
// @Failure 404 {object} models.ApiResponse "Purchase not found"
// @Router /user/purchases/{purchaseId} [get]
func GetPurchaseDetails(c *gin.Context) {
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

	purchaseID, err := uuid.Parse(c.Param("purchaseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid purchase ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var purchase models.Purchase
	err = config.StoreGorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", purchaseID, userID).
		First(&purchase).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Purchase not found"))
		return
	}
	if err != nil {
		log.Printf("[user.purchases] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchase"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase fetched successfully", purchase))
}
