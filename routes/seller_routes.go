package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moghost88/cozy-corner-goods/controllers/seller_controller"
	"github.com/moghost88/cozy-corner-goods/middleware"
)

// SetupSellerRoutes wires the seller dashboard. Writes are rate limited to
// keep a misbehaving client from hammering the listings table.
func SetupSellerRoutes(router *gin.RouterGroup) {
	seller := router.Group("/seller")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RateLimiter(60, time.Minute))
	{
		seller.GET("/stats", seller_controller.GetStats)
		seller.GET("/products", seller_controller.GetProducts)
		seller.POST("/products", seller_controller.CreateProduct)
		seller.PATCH("/products/:productId", seller_controller.UpdateProduct)
		seller.DELETE("/products/:productId", seller_controller.DeleteProduct)

		seller.POST("/products/upload-image", seller_controller.UploadProductImage)
	}
}
