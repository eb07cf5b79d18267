package checkout_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/services"
)

// CreatePurchase godoc
// @Summary Check out the cart
// @Description Freeze the session cart into a purchase record, clear the cart and email a receipt with the invoice PDF attached.
// @Tags User - Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body models.CheckoutRequest true "Shipping and contact details"
// @Success 201 {object} models.ApiResponse "Purchase completed"
// @Failure 400 {object} models.ApiResponse "Invalid request or empty cart"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/checkout [post]
func CreatePurchase(c *gin.Context) {
	userIDStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	shopperCart, err := sessionCart(c)
	if err != nil {
		log.Printf("[user.checkout] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete purchase"))
		return
	}
	lines := shopperCart.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}

	items := make(models.PurchaseItemList, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.PurchaseItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Subtotal:    line.Price * float64(line.Quantity),
		})
	}

	contactJSON, _ := json.Marshal(map[string]string{
		"full_name": req.FullName,
		"email":     req.Email,
		"street":    req.Street,
		"city":      req.City,
		"zip_code":  req.ZipCode,
		"country":   req.Country,
	})

	purchase := models.Purchase{
		UserID:         userID,
		PurchaseNumber: newPurchaseNumber(),
		Items:          items,
		Contact:        datatypes.JSON(contactJSON),
		Total:          shopperCart.Total(),
		Status:         "completed",
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.StoreGorm.WithContext(ctx).Create(&purchase).Error; err != nil {
		log.Printf("[user.checkout] failed to create purchase: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete purchase"))
		return
	}

	if err := shopperCart.Clear(c.Request.Context()); err != nil {
		// The purchase is already committed; an undrained cart is annoying
		// but not worth failing the checkout over.
		log.Printf("[user.checkout] failed to clear cart after purchase %s: %v", purchase.PurchaseNumber, err)
	}

	go sendReceipt(purchase, req.FullName, req.Email)

	log.Printf("[user.checkout] purchase %s created for user %s, total $%.2f",
		purchase.PurchaseNumber, userID, purchase.Total)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Purchase completed", gin.H{
		"purchase_id":     purchase.ID.String(),
		"purchase_number": purchase.PurchaseNumber,
		"total":           purchase.Total,
	}))
}

// sendReceipt renders the invoice PDF and emails it. Runs in the background;
// a missing Resend key just skips the email.
func sendReceipt(purchase models.Purchase, name, email string) {
	client := services.GetResendClient()
	if client == nil {
		return
	}

	pdfBuf := services.GeneratePurchaseInvoicePDF(&purchase, name, email)

	receiptItems := make([]services.ReceiptItem, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		receiptItems = append(receiptItems, services.ReceiptItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	err := client.SendPurchaseReceiptEmail(services.PurchaseReceiptEmailData{
		CustomerName:   name,
		CustomerEmail:  email,
		PurchaseNumber: purchase.PurchaseNumber,
		PurchaseDate:   purchase.CreatedAt.Format("Jan 02, 2006"),
		Items:          receiptItems,
		Total:          purchase.Total,
		PDFContent:     pdfBuf.Bytes(),
	})
	if err != nil {
		log.Printf("[user.checkout] receipt email for %s failed: %v", purchase.PurchaseNumber, err)
	}
}
