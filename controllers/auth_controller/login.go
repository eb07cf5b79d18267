package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/utils"
)

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse "Logged in"
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.StoreGorm.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err != nil {
		log.Printf("[auth.login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if user.PasswordHash == nil {
		// Google-only account; no local password to check.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] token failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", user.ToResponse()))
}
