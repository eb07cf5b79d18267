package auth_controller

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const authCookieName = "auth_token"

// setAuthCookie installs the signed JWT as an HTTP-only cookie. Secure is
// flipped on automatically outside local development.
func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 24*60*60, "/", cookieDomain(), secure, true)
}

// clearAuthCookie expires the session cookie.
func clearAuthCookie(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", cookieDomain(), secure, true)
}

func cookieDomain() string {
	return strings.TrimSpace(os.Getenv("COOKIE_DOMAIN"))
}
