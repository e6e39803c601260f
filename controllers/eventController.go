package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetUpcomingEvents returns published events on or after today, soonest
// first. An optional limit query parameter caps the result.
func GetUpcomingEvents(c *gin.Context) {
	query := initializers.DB.From("events").
		Select("*").
		Where(
			goqu.C("published").IsTrue(),
			goqu.C("date").Gte(goqu.L("CURRENT_DATE")),
		).
		Order(goqu.C("date").Asc())

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(uint(limit))
	}

	var events []models.Event
	if err := query.ScanStructs(&events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// GetPastEvents returns published events before today, most recent first.
func GetPastEvents(c *gin.Context) {
	query := initializers.DB.From("events").
		Select("*").
		Where(
			goqu.C("published").IsTrue(),
			goqu.C("date").Lt(goqu.L("CURRENT_DATE")),
		).
		Order(goqu.C("date").Desc())

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(uint(limit))
	}

	var events []models.Event
	if err := query.ScanStructs(&events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// SubmitEventRSVP records a public RSVP for an event.
func SubmitEventRSVP(c *gin.Context) {
	var req models.EventRSVPCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rsvp := models.EventRSVP{
		Full_Name: req.FullName,
		Email:     req.Email,
		Event:     req.Event,
	}

	var rsvpID int
	insert := initializers.DB.Insert("event_rsvps").Rows(rsvp).Returning("id")
	if _, err := insert.Executor().ScanVal(&rsvpID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit RSVP", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "RSVP submitted successfully",
		"id":      rsvpID,
	})
}

// GetEvents returns all events, published or not, for the admin dashboard.
func GetEvents(c *gin.Context) {
	var events []models.Event

	err := initializers.DB.From("events").
		Select("*").
		Order(goqu.C("date").Desc()).
		ScanStructs(&events)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// GetEventRSVPs lists RSVPs for the admin dashboard, optionally filtered by
// event title.
func GetEventRSVPs(c *gin.Context) {
	query := initializers.DB.From("event_rsvps").
		Select("*").
		Order(goqu.C("created_at").Desc())

	if event := c.Query("event"); event != "" {
		query = query.Where(goqu.C("event").Eq(event))
	}

	var rsvps []models.EventRSVP
	if err := query.ScanStructs(&rsvps); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if rsvps == nil {
		rsvps = []models.EventRSVP{}
	}

	c.JSON(http.StatusOK, rsvps)
}

// CreateEvent adds an event from the admin dashboard.
func CreateEvent(c *gin.Context) {
	var req models.EventCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD", "details": err.Error()})
		return
	}

	event := models.Event{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
		Published:   req.Published,
		Image_ID:    req.ImageID,
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.Ministry != "" {
		event.Ministry = &req.Ministry
	}

	var eventID int
	insert := initializers.DB.Insert("events").Rows(event).Returning("id")
	if _, err := insert.Executor().ScanVal(&eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"id":      eventID,
	})
}

// UpdateEvent modifies an existing event.
func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID", "details": err.Error()})
		return
	}

	var req models.EventCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD", "details": err.Error()})
		return
	}

	record := goqu.Record{
		"title":       req.Title,
		"date":        date,
		"description": req.Description,
		"published":   req.Published,
		"image_id":    req.ImageID,
	}
	if req.Location != "" {
		record["location"] = req.Location
	}
	if req.Ministry != "" {
		record["ministry"] = req.Ministry
	}

	result, err := initializers.DB.Update("events").
		Set(record).
		Where(goqu.C("id").Eq(eventID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DeleteEvent removes an event.
func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("events").
		Where(goqu.C("id").Eq(eventID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
