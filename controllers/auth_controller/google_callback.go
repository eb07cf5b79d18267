package auth_controller

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moghost88/cozy-corner-goods/config"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/utils"
)

type googleClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, validates the ID token, upserts the user and issues a session cookie before redirecting back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to the storefront after login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] state mismatch")
		redirectWithError(c, "Invalid state token")
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("[auth.google] code exchange failed: %v", err)
		redirectWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Printf("[auth.google] no id_token in response")
		redirectWithError(c, "Missing ID token")
		return
	}

	idToken, err := config.OIDCVerifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		log.Printf("[auth.google] id_token verification failed: %v", err)
		redirectWithError(c, "Invalid ID token")
		return
	}

	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil || claims.Sub == "" {
		log.Printf("[auth.google] claims decode failed: %v", err)
		redirectWithError(c, "Failed to decode user info")
		return
	}

	user, err := upsertGoogleUser(c, &claims)
	if err != nil {
		log.Printf("[auth.google] upsert failed: %v", err)
		redirectWithError(c, "Database error")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.google] token failed: %v", err)
		redirectWithError(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, jwtToken)

	log.Printf("[auth.google] login successful for %s", user.Email)
	c.Redirect(http.StatusTemporaryRedirect, frontendURL()+"/auth/callback")
}

// upsertGoogleUser finds the account by Google ID, falls back to linking by
// email, and creates a fresh account when neither exists.
func upsertGoogleUser(c *gin.Context, claims *googleClaims) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.StoreGorm.WithContext(ctx)
	email := strings.ToLower(claims.Email)

	var user models.User
	err := db.Where("google_id = ?", claims.Sub).First(&user).Error
	if err == nil {
		updates := map[string]any{"name": claims.Name}
		if claims.Picture != "" {
			updates["avatar"] = claims.Picture
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	err = db.Where("email = ?", email).First(&user).Error
	if err == nil {
		// Existing local account; link the Google identity.
		sub := claims.Sub
		updates := map[string]any{"google_id": &sub, "provider": "google"}
		if claims.Picture != "" {
			updates["avatar"] = claims.Picture
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	sub := claims.Sub
	user = models.User{
		Email:    email,
		Name:     claims.Name,
		GoogleID: &sub,
		Provider: "google",
	}
	if claims.Picture != "" {
		avatar := claims.Picture
		user.Avatar = &avatar
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth/error?message=%s", frontendURL(), url.QueryEscape(message)))
}

func frontendURL() string {
	if url := os.Getenv("STOREFRONT_URL"); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return "http://localhost:3000"
}
