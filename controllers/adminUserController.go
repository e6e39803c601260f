package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin authenticates a dashboard admin and issues a 24-hour JWT.
func AdminLogin(c *gin.Context) {
	var req models.Login

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	found, err := initializers.DB.From("admin_users").
		Select("*").
		Where(goqu.C("username").Eq(req.Username)).
		ScanStruct(&admin)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   admin.ID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"role": "admin",
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "details": err.Error()})
		return
	}

	log.Printf("Admin %s logged in", admin.Username)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user":    admin,
	})
}

// GetAdminProfile returns the signed-in admin's account details.
func GetAdminProfile(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)
	c.JSON(http.StatusOK, currentAdmin)
}

// StorePushToken registers a device token so the signed-in admin receives
// push notifications for new site activity. Re-registering the same token
// updates its platform instead of duplicating it.
func StorePushToken(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	var req models.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingID int
	found, err := initializers.DB.From("admin_push_tokens").
		Select("id").
		Where(
			goqu.C("admin_user_id").Eq(currentAdmin.ID),
			goqu.C("push_token").Eq(req.PushToken),
		).
		ScanVal(&existingID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if found {
		_, err = initializers.DB.Update("admin_push_tokens").
			Set(goqu.Record{"platform": req.Platform}).
			Where(goqu.C("id").Eq(existingID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update push token", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Push token updated successfully"})
		return
	}

	token := models.AdminPushToken{
		AdminUserID: currentAdmin.ID,
		PushToken:   req.PushToken,
		Platform:    req.Platform,
	}

	_, err = initializers.DB.Insert("admin_push_tokens").Rows(token).Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token stored successfully"})
}
