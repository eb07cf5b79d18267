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

// Register godoc
// @Summary Register a new account
// @Description Create a local account with email and password, then start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse "Account created"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.StoreGorm.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[auth.register] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth.register] hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hashStr := string(hash)
	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: &hashStr,
		Provider:     "local",
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.register] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.register] token failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}
	setAuthCookie(c, token)

	log.Printf("[auth.register] account created for %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", user.ToResponse()))
}
