package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetSermons returns published sermons, newest first. Optional query
// parameters filter server-side: q matches title or description, preacher
// and tag match exactly, type narrows to audio/video/text.
func GetSermons(c *gin.Context) {
	query := initializers.DB.From("sermons").
		Select("*").
		Where(goqu.C("published").IsTrue()).
		Order(goqu.C("date").Desc())

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where(goqu.Or(
			goqu.C("title").ILike(pattern),
			goqu.C("description").ILike(pattern),
		))
	}
	if preacher := c.Query("preacher"); preacher != "" {
		query = query.Where(goqu.C("preacher").Eq(preacher))
	}
	if tag := c.Query("tag"); tag != "" {
		query = query.Where(goqu.L("? = ANY(tags)", tag))
	}
	if sermonType := c.Query("type"); sermonType != "" {
		query = query.Where(goqu.C("type").Eq(sermonType))
	}
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(uint(limit))
	}

	var sermons []models.Sermon
	if err := query.ScanStructs(&sermons); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if sermons == nil {
		sermons = []models.Sermon{}
	}

	c.JSON(http.StatusOK, sermons)
}

// GetLatestSermon returns the most recent published sermon.
func GetLatestSermon(c *gin.Context) {
	var sermon models.Sermon
	found, err := initializers.DB.From("sermons").
		Select("*").
		Where(goqu.C("published").IsTrue()).
		Order(goqu.C("date").Desc()).
		Limit(1).
		ScanStruct(&sermon)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sermons found"})
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// GetNextSermon returns the next future-dated published sermon, falling back
// to the most recent one when nothing is scheduled.
func GetNextSermon(c *gin.Context) {
	var sermon models.Sermon
	found, err := initializers.DB.From("sermons").
		Select("*").
		Where(
			goqu.C("published").IsTrue(),
			goqu.C("date").Gte(goqu.L("CURRENT_DATE")),
		).
		Order(goqu.C("date").Asc()).
		Limit(1).
		ScanStruct(&sermon)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		found, err = initializers.DB.From("sermons").
			Select("*").
			Where(goqu.C("published").IsTrue()).
			Order(goqu.C("date").Desc()).
			Limit(1).
			ScanStruct(&sermon)

		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sermons found"})
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// GetSermonTags returns the distinct tags across published sermons.
func GetSermonTags(c *gin.Context) {
	var tags []string
	err := initializers.DB.From("sermons").
		Select(goqu.L("DISTINCT unnest(tags)")).
		Where(goqu.C("published").IsTrue()).
		ScanVals(&tags)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if tags == nil {
		tags = []string{}
	}

	c.JSON(http.StatusOK, tags)
}

// GetSermonPreachers returns the distinct preachers across published sermons.
func GetSermonPreachers(c *gin.Context) {
	var preachers []string
	err := initializers.DB.From("sermons").
		Select(goqu.L("DISTINCT preacher")).
		Where(goqu.C("published").IsTrue()).
		Order(goqu.C("preacher").Asc()).
		ScanVals(&preachers)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if preachers == nil {
		preachers = []string{}
	}

	c.JSON(http.StatusOK, preachers)
}

// GetAllSermons returns every sermon, published or not, for the admin
// dashboard.
func GetAllSermons(c *gin.Context) {
	var sermons []models.Sermon

	err := initializers.DB.From("sermons").
		Select("*").
		Order(goqu.C("date").Desc()).
		ScanStructs(&sermons)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if sermons == nil {
		sermons = []models.Sermon{}
	}

	c.JSON(http.StatusOK, sermons)
}

// CreateSermon adds a sermon from the admin dashboard.
func CreateSermon(c *gin.Context) {
	var req models.SermonCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD", "details": err.Error()})
		return
	}

	sermon := models.Sermon{
		Title:       req.Title,
		Preacher:    req.Preacher,
		Date:        date,
		Description: req.Description,
		Tags:        pq.StringArray(req.Tags),
		Type:        req.Type,
		Published:   req.Published,
		Day_Held:    req.DayHeld,
	}
	if req.MediaURL != "" {
		sermon.Media_URL = &req.MediaURL
	}

	var sermonID int
	insert := initializers.DB.Insert("sermons").Rows(sermon).Returning("id")
	if _, err := insert.Executor().ScanVal(&sermonID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sermon", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sermon created successfully",
		"id":      sermonID,
	})
}

// UpdateSermon modifies an existing sermon.
func UpdateSermon(c *gin.Context) {
	sermonID, err := strconv.Atoi(c.Param("sermon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID", "details": err.Error()})
		return
	}

	var req models.SermonCreate
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
		"preacher":    req.Preacher,
		"date":        date,
		"description": req.Description,
		"tags":        pq.StringArray(req.Tags),
		"type":        req.Type,
		"published":   req.Published,
		"day_held":    req.DayHeld,
	}
	if req.MediaURL != "" {
		record["media_url"] = req.MediaURL
	}

	result, err := initializers.DB.Update("sermons").
		Set(record).
		Where(goqu.C("id").Eq(sermonID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sermon", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sermon updated successfully"})
}

// DeleteSermon removes a sermon.
func DeleteSermon(c *gin.Context) {
	sermonID, err := strconv.Atoi(c.Param("sermon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("sermons").
		Where(goqu.C("id").Eq(sermonID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sermon", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sermon deleted successfully"})
}
