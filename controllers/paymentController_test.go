package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GraceConnect/services"
	"github.com/stretchr/testify/assert"
)

// newMockPesapalServer stands in for the payment gateway. The statusDesc
// parameter controls what GetTransactionStatus reports.
func newMockPesapalServer(statusDesc string, merchantRef string) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token":      "test-token",
			"expiryDate": time.Now().Add(5 * time.Minute).Format(time.RFC3339),
			"status":     "200",
		})
	})

	mux.HandleFunc("/api/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"order_tracking_id":  "track-123",
			"merchant_reference": merchantRef,
			"redirect_url":       "https://pay.example.com/track-123",
			"status":             "200",
		})
	})

	mux.HandleFunc("/api/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"payment_method":             "MpesaKE",
			"amount":                     500.0,
			"confirmation_code":          "ABC123",
			"payment_status_description": statusDesc,
			"merchant_reference":         merchantRef,
			"currency":                   "KES",
			"status_code":                1,
		})
	})

	return httptest.NewServer(mux)
}

// setupMockPesapal points the gateway client at a mock server for the test
func setupMockPesapal(t *testing.T, server *httptest.Server) func() {
	original := services.GetPesapalService()
	services.SetPesapalService(
		services.NewPesapalService(server.URL, "test-key", "test-secret"))

	return func() {
		services.SetPesapalService(original)
		server.Close()
	}
}

// Test phone number normalization for the gateway billing address
func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"local format with leading zero", "0712345678", "254712345678"},
		{"already international", "254712345678", "254712345678"},
		{"bare subscriber number", "712345678", "254712345678"},
		{"formatted with spaces and plus", "+254 712 345 678", "254712345678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPhoneNumber(tt.input))
		})
	}
}

// Test donor name splitting for the gateway billing address
func TestSplitName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedFirst string
		expectedLast  string
	}{
		{"two names", "Jane Donor", "Jane", "Donor"},
		{"single name gets default last", "Jane", "Jane", "User"},
		{"three names", "Jane Ann Donor", "Jane", "Ann Donor"},
		{"empty name", "", "", "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitName(tt.input)
			assert.Equal(t, tt.expectedFirst, first)
			assert.Equal(t, tt.expectedLast, last)
		})
	}
}

// Test CreatePaymentOrder - validation happens before any gateway call
func TestCreatePaymentOrderValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "below minimum amount",
			body: map[string]interface{}{
				"amount": 5,
				"email":  "jane@example.com",
				"name":   "Jane Donor",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Minimum donation amount is Ksh 10",
		},
		{
			name: "missing email",
			body: map[string]interface{}{
				"amount": 500,
				"name":   "Jane Donor",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: amount, email, and name are required",
		},
		{
			name: "missing name",
			body: map[string]interface{}{
				"amount": 500,
				"email":  "jane@example.com",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: amount, email, and name are required",
		},
		{
			name: "zero amount",
			body: map[string]interface{}{
				"email": "jane@example.com",
				"name":  "Jane Donor",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: amount, email, and name are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No gateway or DB mock: validation must reject first
			c, w := SetupTestContext()
			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/api/payments/order", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreatePaymentOrder(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectedError, response["error"])
		})
	}
}

// Test CreatePaymentOrder - successful submission returns the redirect URL
func TestCreatePaymentOrderSuccess(t *testing.T) {
	server := newMockPesapalServer("COMPLETED", "1")
	restore := setupMockPesapal(t, server)
	defer restore()

	c, w := SetupTestContext()
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"amount":            500,
		"email":             "jane@example.com",
		"phone":             "0712345678",
		"name":              "Jane Donor",
		"merchantReference": "1",
	})
	c.Request = httptest.NewRequest("POST", "/api/payments/order", bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")

	CreatePaymentOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "track-123", data["order_tracking_id"])
	assert.Equal(t, "https://pay.example.com/track-123", data["redirect_url"])
}

// Test HandleIPN - the gateway is re-queried and the donation updated
func TestHandleIPN(t *testing.T) {
	tests := []struct {
		name            string
		gatewayStatus   string
		merchantRef     string
		mockUpdate      bool
		rowsAffected    int64
		mockLookup      bool
		expectedUpdated bool
	}{
		{
			name:            "completed payment updates donation",
			gatewayStatus:   "COMPLETED",
			merchantRef:     "1",
			mockUpdate:      true,
			rowsAffected:    1,
			mockLookup:      true,
			expectedUpdated: true,
		},
		{
			name:            "failed payment updates donation",
			gatewayStatus:   "FAILED",
			merchantRef:     "1",
			mockUpdate:      true,
			rowsAffected:    1,
			mockLookup:      false,
			expectedUpdated: true,
		},
		{
			name:            "unknown gateway status leaves donation untouched",
			gatewayStatus:   "SOMETHING_ELSE",
			merchantRef:     "1",
			mockUpdate:      false,
			mockLookup:      false,
			expectedUpdated: false,
		},
		{
			name:            "non-numeric merchant reference",
			gatewayStatus:   "COMPLETED",
			merchantRef:     "not-a-donation",
			mockUpdate:      false,
			mockLookup:      false,
			expectedUpdated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newMockPesapalServer(tt.gatewayStatus, tt.merchantRef)
			restore := setupMockPesapal(t, server)
			defer restore()

			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.mockUpdate {
				mock.ExpectExec("UPDATE").WillReturnResult(
					sqlmock.NewResult(0, tt.rowsAffected))
			}
			if tt.mockLookup {
				// Donation reload for the receipt email and activity feed
				now := time.Now()
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{
						"id", "full_name", "email", "amount", "payment_method",
						"transaction_id", "payment_status", "currency", "created_at", "updated_at",
					}).AddRow(1, "Jane Donor", "jane@example.com", 500.0, "mpesa",
						"track-123", "completed", "KES", now, now))
				// Activity feed insert
				mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			c, w := SetupTestContext()
			bodyBytes, _ := json.Marshal(map[string]interface{}{
				"OrderTrackingId":        "track-123",
				"OrderMerchantReference": tt.merchantRef,
				"Status":                 "spoofed-status-is-ignored",
			})
			c.Request = httptest.NewRequest("POST", "/api/payments/ipn", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			HandleIPN(c)

			// Always 200 so the gateway does not retry
			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			assert.Equal(t, true, response["success"])
			assert.Equal(t, "IPN processed successfully", response["message"])
			assert.Equal(t, tt.expectedUpdated, response["donationUpdated"])
		})
	}
}

// Test GetPaymentStatus - success page verification endpoint
func TestGetPaymentStatus(t *testing.T) {
	t.Run("missing orderTrackingId", func(t *testing.T) {
		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/api/payments/status", nil)

		GetPaymentStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status returned from gateway", func(t *testing.T) {
		server := newMockPesapalServer("Completed", "1")
		restore := setupMockPesapal(t, server)
		defer restore()

		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		now := time.Now()
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows([]string{
				"id", "full_name", "email", "amount", "payment_method",
				"transaction_id", "payment_status", "currency", "created_at", "updated_at",
			}).AddRow(1, "Jane Donor", "jane@example.com", 500.0, "mpesa",
				"track-123", "completed", "KES", now, now))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("GET", "/api/payments/status?orderTrackingId=track-123", nil)

		GetPaymentStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["success"])

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "COMPLETED", data["status"])
		assert.Equal(t, "ABC123", data["confirmation_code"])
		assert.Equal(t, "track-123", data["transaction_id"])
		assert.Equal(t, "completed", data["payment_status"])
	})
}
