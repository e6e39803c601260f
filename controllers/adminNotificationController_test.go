package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Test GetNotifications - activity feed with per-admin read state
func TestGetNotifications(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		hasNotifications bool
		expectedStatus   int
	}{
		{"feed with entries", "", true, http.StatusOK},
		{"feed with limit", "?limit=10", true, http.StatusOK},
		{"empty feed", "", false, http.StatusOK},
		{"invalid limit", "?limit=zero", false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusOK {
				now := time.Now()
				rows := sqlmock.NewRows([]string{
					"id", "notification_type", "title", "description", "link", "created_at", "is_read",
				})
				if tt.hasNotifications {
					rows.AddRow(2, "donation", "New Donation", "Jane donated KES 500", "/admin/donations", now, false)
					rows.AddRow(1, "subscriber", "New Subscriber", "new@example.com", "/admin/subscriptions", now, true)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Request = httptest.NewRequest("GET", "/api/admin/notifications"+tt.query, nil)

			GetNotifications(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var notifications []map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &notifications)
				if tt.hasNotifications {
					assert.Len(t, notifications, 2)
					assert.Equal(t, false, notifications[0]["isRead"])
					assert.Equal(t, true, notifications[1]["isRead"])
				} else {
					assert.Len(t, notifications, 0)
				}
			}
		})
	}
}

// Test GetUnreadNotificationCount - per-admin unread counter
func TestGetUnreadNotificationCount(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(3))

	c, w := SetupTestContext()
	SetAuthenticatedAdmin(c, MockAdmin())
	c.Request = httptest.NewRequest("GET", "/api/admin/notifications/unread-count", nil)

	GetUnreadNotificationCount(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(3), response["unreadCount"])
}

// Test MarkNotificationRead - read receipts are per admin and idempotent
func TestMarkNotificationRead(t *testing.T) {
	tests := []struct {
		name               string
		notificationID     string
		notificationExists bool
		expectedStatus     int
	}{
		{"mark existing notification", "1", true, http.StatusOK},
		{"notification not found", "999", false, http.StatusNotFound},
		{"invalid id", "abc", false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.notificationID != "abc" {
				rows := sqlmock.NewRows([]string{"id"})
				if tt.notificationExists {
					rows.AddRow(1)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)

				if tt.notificationExists {
					mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
				}
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = []gin.Param{{Key: "notification_id", Value: tt.notificationID}}
			c.Request = httptest.NewRequest("POST", "/api/admin/notifications/"+tt.notificationID+"/read", nil)

			MarkNotificationRead(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// Test MarkAllNotificationsRead - bulk receipts for unread entries only
func TestMarkAllNotificationsRead(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(0, 5))

	c, w := SetupTestContext()
	SetAuthenticatedAdmin(c, MockAdmin())
	c.Request = httptest.NewRequest("POST", "/api/admin/notifications/read-all", nil)

	MarkAllNotificationsRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "All notifications marked as read", response["message"])
	assert.Equal(t, float64(5), response["markedRead"])
}
