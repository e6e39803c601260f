package controllers

import (
	"net/http"
	"strconv"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetPublishedStories returns published stories for the public site, newest
// first. Optional category and featured query parameters filter the list.
func GetPublishedStories(c *gin.Context) {
	query := initializers.DB.From("stories").
		Select("*").
		Where(goqu.C("status").Eq(models.StoryStatusPublished)).
		Order(goqu.C("created_at").Desc())

	if category := c.Query("category"); category != "" {
		query = query.Where(goqu.C("category").Eq(category))
	}
	if c.Query("featured") == "true" {
		query = query.Where(goqu.C("featured").IsTrue())
	}
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(uint(limit))
	}

	var stories []models.Story
	if err := query.ScanStructs(&stories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if stories == nil {
		stories = []models.Story{}
	}

	c.JSON(http.StatusOK, stories)
}

// GetPublishedStory returns a single published story by id.
func GetPublishedStory(c *gin.Context) {
	storyID, err := strconv.Atoi(c.Param("story_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID", "details": err.Error()})
		return
	}

	var story models.Story
	found, err := initializers.DB.From("stories").
		Select("*").
		Where(
			goqu.C("id").Eq(storyID),
			goqu.C("status").Eq(models.StoryStatusPublished),
		).
		ScanStruct(&story)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// GetStories returns all stories regardless of status for the admin
// dashboard.
func GetStories(c *gin.Context) {
	query := initializers.DB.From("stories").
		Select("*").
		Order(goqu.C("created_at").Desc())

	if status := c.Query("status"); status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}

	var stories []models.Story
	if err := query.ScanStructs(&stories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if stories == nil {
		stories = []models.Story{}
	}

	c.JSON(http.StatusOK, stories)
}

// GetStoryStats aggregates story counts for the admin dashboard cards.
func GetStoryStats(c *gin.Context) {
	type storyRow struct {
		Status   string
		Featured bool
	}

	var rows []storyRow
	err := initializers.DB.From("stories").
		Select("status", "featured").
		ScanStructs(&rows)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := models.StoryStats{Total_Stories: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.StoryStatusPublished:
			stats.Published_Stories++
		case models.StoryStatusDraft:
			stats.Draft_Stories++
		}
		if row.Featured {
			stats.Featured_Stories++
		}
	}

	c.JSON(http.StatusOK, stats)
}

// CreateStory adds a story from the admin dashboard. New stories default to
// draft status.
func CreateStory(c *gin.Context) {
	var req models.StoryCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StoryStatusDraft
	}

	story := models.Story{
		Title:            req.Title,
		Content:          req.Content,
		Category:         req.Category,
		Contributor_Name: req.ContributorName,
		Status:           status,
		Featured:         req.Featured,
		Tags:             pq.StringArray(req.Tags),
	}
	if req.Excerpt != "" {
		story.Excerpt = &req.Excerpt
	}
	if req.ContributorEmail != "" {
		story.Contributor_Email = &req.ContributorEmail
	}
	if req.ContributorPhone != "" {
		story.Contributor_Phone = &req.ContributorPhone
	}
	if req.ImageURL != "" {
		story.Image_URL = &req.ImageURL
	}

	var storyID int
	insert := initializers.DB.Insert("stories").Rows(story).Returning("id")
	if _, err := insert.Executor().ScanVal(&storyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create story", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Story created successfully",
		"id":      storyID,
	})
}

// UpdateStory modifies an existing story.
func UpdateStory(c *gin.Context) {
	storyID, err := strconv.Atoi(c.Param("story_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID", "details": err.Error()})
		return
	}

	var req models.StoryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := goqu.Record{
		"title":            req.Title,
		"content":          req.Content,
		"category":         req.Category,
		"contributor_name": req.ContributorName,
		"featured":         req.Featured,
		"tags":             pq.StringArray(req.Tags),
		"updated_at":       goqu.L("NOW()"),
	}
	if req.Status != "" {
		record["status"] = req.Status
	}
	if req.Excerpt != "" {
		record["excerpt"] = req.Excerpt
	}
	if req.ContributorEmail != "" {
		record["contributor_email"] = req.ContributorEmail
	}
	if req.ContributorPhone != "" {
		record["contributor_phone"] = req.ContributorPhone
	}
	if req.ImageURL != "" {
		record["image_url"] = req.ImageURL
	}

	result, err := initializers.DB.Update("stories").
		Set(record).
		Where(goqu.C("id").Eq(storyID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update story", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story updated successfully"})
}

// DeleteStory removes a story. The id arrives in the request body, which is
// what the admin dashboard sends.
func DeleteStory(c *gin.Context) {
	var req struct {
		ID int `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("stories").
		Where(goqu.C("id").Eq(req.ID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete story", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story deleted successfully"})
}
