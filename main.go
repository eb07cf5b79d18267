// @title Cozy Corner Goods API
// @version 1.0
// @description Storefront backend for Cozy Corner Goods digital home-organization products.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/moghost88/cozy-corner-goods/catalog"
	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/controllers/storefront/cart_controller"
	"github.com/moghost88/cozy-corner-goods/controllers/storefront/product_controller"
	"github.com/moghost88/cozy-corner-goods/controllers/storefront/wishlist_controller"
	"github.com/moghost88/cozy-corner-goods/controllers/user/checkout_controller"
	_ "github.com/moghost88/cozy-corner-goods/docs"
	"github.com/moghost88/cozy-corner-goods/routes"
	"github.com/moghost88/cozy-corner-goods/services"
	"github.com/moghost88/cozy-corner-goods/storage"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// JWT secret is non-negotiable
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Cloudinary powers seller image uploads; the storefront works without it
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Printf("⚠️ Cloudinary not configured, image uploads disabled: %v", err)
	} else {
		log.Println("✅ Cloudinary initialized")
	}

	// Resend powers receipt emails; also optional in local dev
	if err := services.InitResend(); err != nil {
		log.Printf("⚠️ Resend not configured, receipt emails disabled: %v", err)
	} else {
		log.Println("✅ Resend initialized")
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// Static catalog plus Redis-backed shopper state behind every storefront
	// controller
	cat := catalog.Default()
	shopperKV := storage.NewRedisKV(config.RedisClient)

	product_controller.Init(cat, shopperKV)
	cart_controller.Init(cat, shopperKV)
	wishlist_controller.Init(cat, shopperKV)
	checkout_controller.Init(shopperKV)
	log.Printf("✅ Catalog loaded with %d products", cat.Len())

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}
	if origin := os.Getenv("STOREFRONT_URL"); origin != "" {
		corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origin)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	routes.SetupStorefrontRoutes(api)
	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)
	routes.SetupSellerRoutes(api)
	log.Println("✅ Routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
