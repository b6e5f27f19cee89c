package handlers

import (
	"net/http"
	"time"

	"restaurant-orders-api/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Secret []byte
	TTL    time.Duration
	// PasswordHash is a bcrypt hash every login must match. Empty accepts
	// any password.
	PasswordHash string
}

func NewAuthHandler(secret []byte, ttl time.Duration, passwordHash string) *AuthHandler {
	return &AuthHandler{Secret: secret, TTL: ttl, PasswordHash: passwordHash}
}

// TokenRequest mirrors the OAuth2 password grant form
type TokenRequest struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	GrantType string `form:"grant_type"`
}

// Token issues a bearer token for the submitted username
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if h.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}
	}

	token, err := middleware.GenerateToken(req.Username, h.Secret, h.TTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
