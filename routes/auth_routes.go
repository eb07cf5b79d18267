package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/moghost88/cozy-corner-goods/controllers/auth_controller"
	"github.com/moghost88/cozy-corner-goods/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)

		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.Me)
	}
}
