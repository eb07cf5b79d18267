package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/moghost88/cozy-corner-goods/controllers/user/checkout_controller"
	"github.com/moghost88/cozy-corner-goods/middleware"
)

// SetupUserRoutes wires checkout and order history. All routes require auth;
// checkout additionally needs the shopper session to drain the right cart.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.POST("/checkout", middleware.ShopperSession(), checkout_controller.CreatePurchase)

		user.GET("/purchases", checkout_controller.GetPurchases)
		user.GET("/purchases/:purchaseId", checkout_controller.GetPurchaseDetails)
		user.GET("/purchases/:purchaseId/invoice", checkout_controller.DownloadInvoice)
	}
}
