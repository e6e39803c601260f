package controllers

import (
	"net/http"

	"github.com/GraceConnect/services"

	"github.com/gin-gonic/gin"
)

// Ping is a health check.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// TestEmail sends a test receipt so the email integration can be verified
// from the admin dashboard.
func TestEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emailService := services.GetEmailService()
	if emailService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Email service not available"})
		return
	}

	if err := emailService.SendDonationReceiptEmail(req.Email, "Test Donor", 100, "KES", "TEST_TRANSACTION"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test email sent successfully"})
}
