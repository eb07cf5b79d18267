package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "shopper_session"

	// One year, matching the TTL on persisted shopper state.
	sessionMaxAge = 365 * 24 * 60 * 60
)

// ShopperSession assigns every visitor a stable session id via cookie. Cart,
// wishlist and recently-viewed state are namespaced under it, which is what
// lets them survive a full reload.
func ShopperSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set("sessionID", sid)
		c.Next()
	}
}

// GetSessionIDFromContext returns the shopper session id set by ShopperSession.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sid, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return sid.(string), true
}
