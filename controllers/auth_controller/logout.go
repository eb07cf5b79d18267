package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/models"
)

// Logout godoc
// @Summary Log out
// @Description End the current session.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	clearAuthCookie(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
