package checkout_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/services"
)

// DownloadInvoice godoc
// @Summary Download an invoice PDF
// @Description Render and stream the invoice for one of the user's purchases.
// @Tags User - Checkout
// @Produce application/pdf
// @Security BearerAuth
// @Param purchaseId path string true "Purchase ID"
// @Success 200 {file} binary "Invoice PDF"
// @Failure 404 {object} models.ApiResponse "Purchase not found"
// @Router /user/purchases/{purchaseId}/invoice [get]
func DownloadInvoice(c *gin.Context) {
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
		log.Printf("[user.invoice] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchase"))
		return
	}

	name, _ := middleware.GetUserNameFromContext(c)
	email, _ := middleware.GetUserEmailFromContext(c)

	pdfBuf := services.GeneratePurchaseInvoicePDF(&purchase, name, email)
	if pdfBuf.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", purchase.PurchaseNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBuf.Bytes())
}
