package controllers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
	"github.com/GraceConnect/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// Subscribe adds an email to the newsletter list. Duplicate subscriptions
// respond successfully without inserting a second row.
func Subscribe(c *gin.Context) {
	var req models.SubscribeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Subscriber
	found, err := initializers.DB.From("subscribers").
		Select("*").
		Where(goqu.C("email").Eq(req.Email)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if found {
		c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
		return
	}

	subscriber := models.Subscriber{Email: req.Email}

	var subscriberID int
	insert := initializers.DB.Insert("subscribers").Rows(subscriber).Returning("id")
	if _, err := insert.Executor().ScanVal(&subscriberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe", "details": err.Error()})
		return
	}

	if emailService := services.GetEmailService(); emailService != nil {
		if err := emailService.SendSubscriberWelcomeEmail(req.Email); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", req.Email, err)
		}
	}

	services.NotifyNewSubscriber(req.Email)

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed successfully",
		"id":      subscriberID,
	})
}

// GetSubscribers lists subscribers for the admin dashboard, newest first.
func GetSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber

	err := initializers.DB.From("subscribers").
		Select("*").
		Order(goqu.C("created_at").Desc()).
		ScanStructs(&subscribers)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if subscribers == nil {
		subscribers = []models.Subscriber{}
	}

	c.JSON(http.StatusOK, subscribers)
}

// ExportSubscribers streams the subscriber list as a CSV download.
func ExportSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber

	err := initializers.DB.From("subscribers").
		Select("*").
		Order(goqu.C("created_at").Asc()).
		ScanStructs(&subscribers)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("subscribers_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write([]string{"id", "email", "subscribed_at"})
	for _, s := range subscribers {
		_ = writer.Write([]string{
			strconv.Itoa(s.ID),
			s.Email,
			s.Created_At.Format(time.RFC3339),
		})
	}
	writer.Flush()
}

// DeleteSubscriber removes a subscriber from the list.
func DeleteSubscriber(c *gin.Context) {
	subscriberID, err := strconv.Atoi(c.Param("subscriber_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscriber ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("subscribers").
		Where(goqu.C("id").Eq(subscriberID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted successfully"})
}
