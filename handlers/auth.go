package handlers

import (
	"crypto/subtle"
	"net/http"

	"food-menu-api/config"
	"food-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// IssueToken exchanges the admin key for a JWT used on mutating menu routes
func IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(config.AdminKey())) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
		return
	}

	token, err := middleware.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
