package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sermonColumns() []string {
	return []string{
		"id", "title", "preacher", "date", "description", "media_url",
		"tags", "type", "published", "day_held", "created_at",
	}
}

// Test GetSermons - public listing with server-side filters
func TestGetSermons(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		hasSermons     bool
		expectedStatus int
	}{
		{"all published sermons", "", true, http.StatusOK},
		{"text search", "?q=grace", true, http.StatusOK},
		{"filter by preacher", "?preacher=Pastor+John", true, http.StatusOK},
		{"filter by tag", "?tag=faith", true, http.StatusOK},
		{"combined filters", "?q=grace&preacher=Pastor+John&tag=faith", false, http.StatusOK},
		{"invalid limit", "?limit=abc", false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusOK {
				now := time.Now()
				rows := sqlmock.NewRows(sermonColumns())
				if tt.hasSermons {
					rows.AddRow(1, "Walking in Grace", "Pastor John", now, "A sermon on grace",
						"https://media.example.com/sermon-1.mp3", "{faith,grace}", "audio", true, "Sunday", now)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/api/sermons"+tt.query, nil)

			GetSermons(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var sermons []interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &sermons)
				if tt.hasSermons {
					assert.Len(t, sermons, 1)
				} else {
					assert.Len(t, sermons, 0)
				}
			}
		})
	}
}

// Test GetLatestSermon - most recent published sermon
func TestGetLatestSermon(t *testing.T) {
	tests := []struct {
		name           string
		sermonExists   bool
		expectedStatus int
	}{
		{"sermon found", true, http.StatusOK},
		{"no sermons yet", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()
			rows := sqlmock.NewRows(sermonColumns())
			if tt.sermonExists {
				rows.AddRow(1, "Walking in Grace", "Pastor John", now, "A sermon on grace",
					nil, "{faith}", "video", true, "Sunday", now)
			}
			mock.ExpectQuery("SELECT").WillReturnRows(rows)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/api/sermons/latest", nil)

			GetLatestSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.sermonExists {
				var response map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &response)
				assert.Equal(t, "Walking in Grace", response["title"])
			}
		})
	}
}

// Test GetNextSermon - falls back to the most recent sermon when nothing is
// scheduled
func TestGetNextSermon(t *testing.T) {
	t.Run("future sermon scheduled", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		future := time.Now().AddDate(0, 0, 7)
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(sermonColumns()).
				AddRow(2, "Next Sunday", "Pastor John", future, "Upcoming service",
					nil, "{}", "video", true, "Sunday", time.Now()))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/api/sermons/next", nil)

		GetNextSermon(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Next Sunday", response["title"])
	})

	t.Run("fallback to most recent", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		// No future sermons
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sermonColumns()))
		// Fallback query returns the latest past sermon
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(sermonColumns()).
				AddRow(1, "Last Sunday", "Pastor John", time.Now().AddDate(0, 0, -7),
					"Past service", nil, "{}", "video", true, "Sunday", time.Now()))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/api/sermons/next", nil)

		GetNextSermon(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Last Sunday", response["title"])
	})

	t.Run("no sermons at all", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sermonColumns()))
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sermonColumns()))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/api/sermons/next", nil)

		GetNextSermon(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test CreateSermon - admin creation with date validation
func TestCreateSermon(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockInsert     bool
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: map[string]interface{}{
				"title":    "Walking in Grace",
				"preacher": "Pastor John",
				"date":     "2026-08-30",
				"tags":     []string{"faith", "grace"},
				"type":     "audio",
			},
			mockInsert:     true,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid date format",
			body: map[string]interface{}{
				"title":    "Walking in Grace",
				"preacher": "Pastor John",
				"date":     "30/08/2026",
			},
			mockInsert:     false,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing preacher",
			body: map[string]interface{}{
				"title": "Walking in Grace",
				"date":  "2026-08-30",
			},
			mockInsert:     false,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.mockInsert {
				mock.ExpectQuery("INSERT").WillReturnRows(
					sqlmock.NewRows([]string{"id"}).AddRow(1))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/api/admin/sermons", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// Test UpdateSermon and DeleteSermon - admin modification
func TestUpdateSermon(t *testing.T) {
	tests := []struct {
		name           string
		sermonID       string
		mockUpdate     bool
		rowsAffected   int64
		expectedStatus int
	}{
		{"successful update", "1", true, 1, http.StatusOK},
		{"sermon not found", "999", true, 0, http.StatusNotFound},
		{"invalid id", "abc", false, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.mockUpdate {
				mock.ExpectExec("UPDATE").WillReturnResult(
					sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = []gin.Param{{Key: "sermon_id", Value: tt.sermonID}}
			bodyBytes, _ := json.Marshal(map[string]interface{}{
				"title":    "Updated Title",
				"preacher": "Pastor John",
				"date":     "2026-08-30",
			})
			c.Request = httptest.NewRequest("PUT", "/api/admin/sermons/"+tt.sermonID, bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			UpdateSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDeleteSermon(t *testing.T) {
	tests := []struct {
		name           string
		sermonID       string
		mockDelete     bool
		rowsAffected   int64
		expectedStatus int
	}{
		{"successful delete", "1", true, 1, http.StatusOK},
		{"sermon not found", "999", true, 0, http.StatusNotFound},
		{"invalid id", "abc", false, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.mockDelete {
				mock.ExpectExec("DELETE").WillReturnResult(
					sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = []gin.Param{{Key: "sermon_id", Value: tt.sermonID}}
			c.Request = httptest.NewRequest("DELETE", "/api/admin/sermons/"+tt.sermonID, nil)

			DeleteSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
