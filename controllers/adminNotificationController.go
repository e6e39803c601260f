package controllers

import (
	"net/http"
	"strconv"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetNotifications returns the activity feed for the signed-in admin,
// newest first, with each entry's read state resolved per admin.
func GetNotifications(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	query := initializers.DB.From(goqu.T("notifications").As("n")).
		Select(
			goqu.I("n.id"),
			goqu.I("n.notification_type"),
			goqu.I("n.title"),
			goqu.I("n.description"),
			goqu.I("n.link"),
			goqu.I("n.created_at"),
			goqu.L("(r.id IS NOT NULL)").As("is_read"),
		).
		LeftJoin(
			goqu.T("notification_reads").As("r"),
			goqu.On(
				goqu.I("r.notification_id").Eq(goqu.I("n.id")),
				goqu.I("r.admin_user_id").Eq(currentAdmin.ID),
			),
		).
		Order(goqu.I("n.created_at").Desc())

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(uint(limit))
	}

	var notifications []models.NotificationItem
	if err := query.ScanStructs(&notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if notifications == nil {
		notifications = []models.NotificationItem{}
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadNotificationCount returns how many feed entries the signed-in
// admin has not read.
func GetUnreadNotificationCount(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	var count int
	_, err := initializers.DB.From(goqu.T("notifications").As("n")).
		Select(goqu.COUNT("*")).
		LeftJoin(
			goqu.T("notification_reads").As("r"),
			goqu.On(
				goqu.I("r.notification_id").Eq(goqu.I("n.id")),
				goqu.I("r.admin_user_id").Eq(currentAdmin.ID),
			),
		).
		Where(goqu.I("r.id").IsNull()).
		ScanVal(&count)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// MarkNotificationRead records a read receipt for one feed entry. Marking an
// already-read entry is a no-op.
func MarkNotificationRead(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	notificationID, err := strconv.Atoi(c.Param("notification_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID", "details": err.Error()})
		return
	}

	var exists int
	found, err := initializers.DB.From("notifications").
		Select("id").
		Where(goqu.C("id").Eq(notificationID)).
		ScanVal(&exists)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	_, err = initializers.DB.Insert("notification_reads").
		Rows(models.NotificationRead{
			Admin_User_ID:   currentAdmin.ID,
			Notification_ID: notificationID,
		}).
		OnConflict(goqu.DoNothing()).
		Executor().Exec()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead records read receipts for every feed entry the
// signed-in admin has not yet read.
func MarkAllNotificationsRead(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	insert := initializers.DB.Insert("notification_reads").
		Cols("admin_user_id", "notification_id").
		FromQuery(
			initializers.DB.From(goqu.T("notifications").As("n")).
				Select(goqu.V(currentAdmin.ID), goqu.I("n.id")).
				LeftJoin(
					goqu.T("notification_reads").As("r"),
					goqu.On(
						goqu.I("r.notification_id").Eq(goqu.I("n.id")),
						goqu.I("r.admin_user_id").Eq(currentAdmin.ID),
					),
				).
				Where(goqu.I("r.id").IsNull()),
		)

	result, err := insert.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	c.JSON(http.StatusOK, gin.H{
		"message":    "All notifications marked as read",
		"markedRead": rowsAffected,
	})
}
