package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func settingsColumns() []string {
	return []string{
		"id", "site_name", "site_description", "contact_email",
		"pastor_name", "church_address", "service_times", "created_at", "updated_at",
	}
}

// Test GetSettings - stored row or defaults
func TestGetSettings(t *testing.T) {
	tests := []struct {
		name         string
		rowExists    bool
		expectedName string
	}{
		{"stored settings returned", true, "Grace Chapel"},
		{"defaults when no row exists", false, "Our Church"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()
			rows := sqlmock.NewRows(settingsColumns())
			if tt.rowExists {
				rows.AddRow(1, "Grace Chapel", "A community church", "info@gracechapel.org",
					"Pastor Jane", "1 Chapel Road", "Sunday 9 AM", now, now)
			}
			mock.ExpectQuery("SELECT").WillReturnRows(rows)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/api/settings", nil)

			GetSettings(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			assert.Equal(t, tt.expectedName, response["siteName"])
		})
	}
}

// Test UpdateSettings - partial updates merge into the stored row
func TestUpdateSettings(t *testing.T) {
	t.Run("update existing row keeps omitted fields", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		now := time.Now()
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(settingsColumns()).
				AddRow(1, "Grace Chapel", "A community church", "info@gracechapel.org",
					"Pastor Jane", "1 Chapel Road", "Sunday 9 AM", now, now))
		mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))

		c, w := SetupTestContext()
		SetAuthenticatedAdmin(c, MockAdmin())
		bodyBytes, _ := json.Marshal(map[string]interface{}{
			"pastorName": "Pastor Peter",
		})
		c.Request = httptest.NewRequest("PUT", "/api/admin/settings", bytes.NewReader(bodyBytes))
		c.Request.Header.Set("Content-Type", "application/json")

		UpdateSettings(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)

		settings := response["settings"].(map[string]interface{})
		assert.Equal(t, "Pastor Peter", settings["pastorName"])
		// Fields not in the request keep their stored values
		assert.Equal(t, "Grace Chapel", settings["siteName"])
	})

	t.Run("first update inserts a row from defaults", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(settingsColumns()))
		mock.ExpectQuery("INSERT").WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(1))

		c, w := SetupTestContext()
		SetAuthenticatedAdmin(c, MockAdmin())
		bodyBytes, _ := json.Marshal(map[string]interface{}{
			"siteName": "Grace Chapel",
		})
		c.Request = httptest.NewRequest("PUT", "/api/admin/settings", bytes.NewReader(bodyBytes))
		c.Request.Header.Set("Content-Type", "application/json")

		UpdateSettings(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)

		settings := response["settings"].(map[string]interface{})
		assert.Equal(t, "Grace Chapel", settings["siteName"])
		// Unspecified fields fall back to defaults
		assert.Equal(t, "A loving community of believers", settings["siteDescription"])
	})
}
