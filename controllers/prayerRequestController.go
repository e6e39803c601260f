package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
	"github.com/GraceConnect/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// SubmitPrayerRequest records a public prayer request. Anonymous requests
// still store the submitter's details; anonymity only affects what the
// activity feed shows.
func SubmitPrayerRequest(c *gin.Context) {
	var req models.PrayerRequestCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.IsAnonymous && req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required unless the request is anonymous"})
		return
	}

	request := models.PrayerRequest{
		Full_Name:    req.FullName,
		Email:        req.Email,
		Subject:      req.Subject,
		Message:      req.Message,
		Prayer_Type:  req.PrayerType,
		Is_Anonymous: req.IsAnonymous,
		Status:       models.RequestStatusUnread,
	}

	var requestID int
	insert := initializers.DB.Insert("prayer_requests").Rows(request).Returning("id")
	if _, err := insert.Executor().ScanVal(&requestID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prayer request", "details": err.Error()})
		return
	}

	services.NotifyPrayerRequestSubmitted(req.FullName, req.Subject, req.IsAnonymous)

	c.JSON(http.StatusOK, gin.H{
		"message": "Prayer request submitted successfully",
		"id":      requestID,
	})
}

// GetPrayerRequests lists prayer requests for the admin dashboard, newest
// first, optionally filtered by status or prayer type.
func GetPrayerRequests(c *gin.Context) {
	query := initializers.DB.From("prayer_requests").
		Select("*").
		Order(goqu.C("created_at").Desc())

	if status := c.Query("status"); status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}
	if prayerType := c.Query("type"); prayerType != "" {
		query = query.Where(goqu.C("prayer_type").Eq(prayerType))
	}

	var requests []models.PrayerRequest
	if err := query.ScanStructs(&requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if requests == nil {
		requests = []models.PrayerRequest{}
	}

	c.JSON(http.StatusOK, requests)
}

// GetPrayerRequest fetches one prayer request by id.
func GetPrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID", "details": err.Error()})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_requests").
		Select("*").
		Where(goqu.C("id").Eq(requestID)).
		ScanStruct(&request)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetPrayerRequestStats aggregates request counts for the admin dashboard.
// Recent counts cover the last seven days.
func GetPrayerRequestStats(c *gin.Context) {
	type requestRow struct {
		Status     string
		Created_At time.Time
	}

	var rows []requestRow
	err := initializers.DB.From("prayer_requests").
		Select("status", "created_at").
		ScanStructs(&rows)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)

	stats := models.PrayerRequestStats{Total_Requests: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.RequestStatusUnread:
			stats.Unread_Requests++
		case models.RequestStatusInProgress:
			stats.In_Progress_Requests++
		case models.RequestStatusResolved:
			stats.Resolved_Requests++
		}
		if row.Created_At.After(weekAgo) {
			stats.Recent_Requests++
		}
	}

	c.JSON(http.StatusOK, stats)
}

// UpdatePrayerRequestStatus moves a request through the triage workflow.
func UpdatePrayerRequestStatus(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID", "details": err.Error()})
		return
	}

	var req models.RequestStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("prayer_requests").
		Set(goqu.Record{
			"status":     req.Status,
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.C("id").Eq(requestID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request status", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request status updated successfully"})
}

// DeletePrayerRequest removes a prayer request.
func DeletePrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("prayer_requests").
		Where(goqu.C("id").Eq(requestID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request deleted successfully"})
}
