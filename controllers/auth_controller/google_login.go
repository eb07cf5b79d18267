package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moghost88/cozy-corner-goods/config"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow. Generates a state token, stores it in a secure cookie and redirects to Google's consent page.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("oauth_state", state, 3600, "/", "", false, true)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	log.Printf("[auth.google] redirecting to consent page")

	c.Redirect(http.StatusTemporaryRedirect, url)
}
