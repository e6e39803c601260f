package controllers

import (
	"net/http"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetSettings returns the site settings row, falling back to defaults when
// none has been saved yet.
func GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	found, err := initializers.DB.From("site_settings").
		Select("*").
		Order(goqu.C("id").Asc()).
		Limit(1).
		ScanStruct(&settings)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		settings = models.DefaultSettings()
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the single settings row. Only the fields present in
// the request change; omitted fields keep their stored values.
func UpdateSettings(c *gin.Context) {
	var req models.SiteSettingsUpdate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.SiteSettings
	found, err := initializers.DB.From("site_settings").
		Select("*").
		Order(goqu.C("id").Asc()).
		Limit(1).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		existing = models.DefaultSettings()
	}

	if req.SiteName != nil {
		existing.Site_Name = *req.SiteName
	}
	if req.SiteDescription != nil {
		existing.Site_Description = *req.SiteDescription
	}
	if req.ContactEmail != nil {
		existing.Contact_Email = *req.ContactEmail
	}
	if req.PastorName != nil {
		existing.Pastor_Name = *req.PastorName
	}
	if req.ChurchAddress != nil {
		existing.Church_Address = *req.ChurchAddress
	}
	if req.ServiceTimes != nil {
		existing.Service_Times = *req.ServiceTimes
	}

	if found {
		_, err = initializers.DB.Update("site_settings").
			Set(goqu.Record{
				"site_name":        existing.Site_Name,
				"site_description": existing.Site_Description,
				"contact_email":    existing.Contact_Email,
				"pastor_name":      existing.Pastor_Name,
				"church_address":   existing.Church_Address,
				"service_times":    existing.Service_Times,
				"updated_at":       goqu.L("NOW()"),
			}).
			Where(goqu.C("id").Eq(existing.ID)).
			Executor().Exec()
	} else {
		insert := initializers.DB.Insert("site_settings").Rows(existing).Returning("id")
		_, err = insert.Executor().ScanVal(&existing.ID)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings saved successfully",
		"settings": existing,
	})
}
