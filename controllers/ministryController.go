package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
	"github.com/GraceConnect/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetMinistries lists all ministries for the public site.
func GetMinistries(c *gin.Context) {
	var ministries []models.Ministry

	err := initializers.DB.From("ministries").
		Select("*").
		Order(goqu.C("name").Asc()).
		ScanStructs(&ministries)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if ministries == nil {
		ministries = []models.Ministry{}
	}

	c.JSON(http.StatusOK, ministries)
}

// SubmitMinistrySignup records a public signup. The Children's Ministry form
// collects parent and child details; every other ministry collects a plain
// full name.
func SubmitMinistrySignup(c *gin.Context) {
	var req models.MinistrySignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signup := models.MinistrySignup{
		Ministry_Name: req.Ministry,
		Email:         req.Email,
		Status:        models.SignupStatusPending,
	}

	if req.Ministry == models.ChildrensMinistryName {
		if req.ParentName == "" || req.ChildName == "" || req.ChildAge <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "parentName, childName, and childAge are required for Children's Ministry signups",
			})
			return
		}
		signup.Parent_Name = &req.ParentName
		signup.Child_Name = &req.ChildName
		signup.Child_Age = &req.ChildAge
		signup.Full_Name = req.ParentName
	} else {
		if req.FullName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
			return
		}
		signup.Full_Name = req.FullName
	}

	if req.Phone != "" {
		signup.Phone_Number = &req.Phone
	}

	if len(req.Extra) > 0 {
		extraJSON, err := json.Marshal(req.Extra)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra fields", "details": err.Error()})
			return
		}
		signup.Additional_Info = string(extraJSON)
	}

	var signupID int
	insert := initializers.DB.Insert("ministry_signups").Rows(signup).Returning("id")
	if _, err := insert.Executor().ScanVal(&signupID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit signup", "details": err.Error()})
		return
	}

	if emailService := services.GetEmailService(); emailService != nil {
		if err := emailService.SendSignupConfirmationEmail(req.Email, signup.Full_Name, req.Ministry); err != nil {
			log.Printf("Failed to send signup confirmation for %s: %v", req.Email, err)
		}
	}

	services.NotifyMinistrySignup(signup.Full_Name, req.Ministry)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signup submitted successfully",
		"id":      signupID,
	})
}

// GetMinistrySignups lists signups for the admin dashboard, optionally
// filtered by ministry or status.
func GetMinistrySignups(c *gin.Context) {
	query := initializers.DB.From("ministry_signups").
		Select("*").
		Order(goqu.C("created_at").Desc())

	if ministry := c.Query("ministry"); ministry != "" {
		query = query.Where(goqu.C("ministry_name").Eq(ministry))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}

	var signups []models.MinistrySignup
	if err := query.ScanStructs(&signups); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if signups == nil {
		signups = []models.MinistrySignup{}
	}

	c.JSON(http.StatusOK, signups)
}

// UpdateSignupStatus approves or declines a signup.
func UpdateSignupStatus(c *gin.Context) {
	signupID, err := strconv.Atoi(c.Param("signup_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup ID", "details": err.Error()})
		return
	}

	var req models.SignupStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("ministry_signups").
		Set(goqu.Record{"status": req.Status}).
		Where(goqu.C("id").Eq(signupID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update signup status", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signup not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signup status updated successfully"})
}

// CreateMinistry adds a ministry from the admin dashboard.
func CreateMinistry(c *gin.Context) {
	var req models.MinistryCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ministry := models.Ministry{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Image_ID:    req.ImageID,
		Href:        req.Href,
	}

	var ministryID int
	insert := initializers.DB.Insert("ministries").Rows(ministry).Returning("id")
	if _, err := insert.Executor().ScanVal(&ministryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ministry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ministry created successfully",
		"id":      ministryID,
	})
}

// UpdateMinistry modifies an existing ministry.
func UpdateMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID", "details": err.Error()})
		return
	}

	var req models.MinistryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("ministries").
		Set(goqu.Record{
			"name":        req.Name,
			"description": req.Description,
			"icon":        req.Icon,
			"image_id":    req.ImageID,
			"href":        req.Href,
		}).
		Where(goqu.C("id").Eq(ministryID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ministry", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ministry updated successfully"})
}

// DeleteMinistry removes a ministry.
func DeleteMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("ministries").
		Where(goqu.C("id").Eq(ministryID)).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ministry", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ministry deleted successfully"})
}
