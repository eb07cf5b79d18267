package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
)

// Me godoc
// @Summary Current user
// @Description Return the profile of the logged-in user.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "User fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).First(&user, "id = ?", uid).Error; err != nil {
		log.Printf("[auth.me] lookup failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", user.ToResponse()))
}
