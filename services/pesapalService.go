package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

// PesapalService wraps the Pesapal API v3 REST endpoints used by the
// donation flow: auth token request, order submission, transaction status
// lookup and IPN URL registration.
type PesapalService struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type PesapalOrder struct {
	ID             string                `json:"id"`
	Currency       string                `json:"currency"`
	Amount         float64               `json:"amount"`
	Description    string                `json:"description"`
	CallbackURL    string                `json:"callback_url"`
	NotificationID string                `json:"notification_id"`
	BillingAddress PesapalBillingAddress `json:"billing_address"`
}

type PesapalBillingAddress struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	CountryCode  string `json:"country_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type PesapalOrderResponse struct {
	OrderTrackingID   string        `json:"order_tracking_id"`
	MerchantReference string        `json:"merchant_reference"`
	RedirectURL       string        `json:"redirect_url"`
	Status            string        `json:"status"`
	Error             *PesapalError `json:"error"`
}

type PesapalOrderStatus struct {
	PaymentMethod            string        `json:"payment_method"`
	Amount                   float64       `json:"amount"`
	CreatedDate              string        `json:"created_date"`
	ConfirmationCode         string        `json:"confirmation_code"`
	PaymentStatusDescription string        `json:"payment_status_description"`
	Description              string        `json:"description"`
	PaymentAccount           string        `json:"payment_account"`
	MerchantReference        string        `json:"merchant_reference"`
	Currency                 string        `json:"currency"`
	StatusCode               int           `json:"status_code"`
	Error                    *PesapalError `json:"error"`
}

type PesapalError struct {
	Type    string `json:"error_type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type pesapalTokenResponse struct {
	Token      string        `json:"token"`
	ExpiryDate string        `json:"expiryDate"`
	Status     string        `json:"status"`
	Error      *PesapalError `json:"error"`
}

type PesapalIPNRegistration struct {
	URL     string `json:"url"`
	IPNID   string `json:"ipn_id"`
	Status  string `json:"status"`
	IPNType string `json:"ipn_notification_type_description"`
}

var pesapalService *PesapalService

// InitPesapalService configures the gateway client from the environment.
func InitPesapalService() {
	baseURL := os.Getenv("PESAPAL_BASE_URL")
	consumerKey := os.Getenv("PESAPAL_CONSUMER_KEY")
	consumerSecret := os.Getenv("PESAPAL_CONSUMER_SECRET")

	if baseURL == "" || consumerKey == "" || consumerSecret == "" {
		log.Println("WARNING: Pesapal credentials not set. Payment service will not be available.")
		return
	}

	pesapalService = NewPesapalService(baseURL, consumerKey, consumerSecret)
	log.Println("Pesapal payment service initialized")
}

// NewPesapalService builds a client against the given base URL. Tests point
// this at an httptest server.
func NewPesapalService(baseURL, consumerKey, consumerSecret string) *PesapalService {
	return &PesapalService{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

// GetPesapalService returns the singleton gateway client.
func GetPesapalService() *PesapalService {
	return pesapalService
}

// SetPesapalService overrides the singleton (used by tests).
func SetPesapalService(s *PesapalService) {
	pesapalService = s
}

// getToken returns a cached bearer token, requesting a fresh one when the
// cached token is missing or within a minute of expiry.
func (s *PesapalService) getToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Add(time.Minute).Before(s.tokenExpiry) {
		return s.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"consumer_key":    s.consumerKey,
		"consumer_secret": s.consumerSecret,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %v", err)
	}

	resp, err := s.httpClient.Post(s.baseURL+"/api/Auth/RequestToken", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("token request failed: %v", err)
	}
	defer resp.Body.Close()

	var tokenResp pesapalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %v", err)
	}

	if tokenResp.Error != nil {
		return "", fmt.Errorf("pesapal auth error: %s", tokenResp.Error.Message)
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("pesapal returned an empty token")
	}

	s.token = tokenResp.Token

	// Pesapal tokens are valid for 5 minutes; the expiryDate field is only
	// advisory, so fall back to the documented lifetime when it won't parse.
	expiry, parseErr := time.Parse(time.RFC3339, tokenResp.ExpiryDate)
	if parseErr != nil {
		expiry = time.Now().Add(5 * time.Minute)
	}
	s.tokenExpiry = expiry

	return s.token, nil
}

func (s *PesapalService) doJSON(method, path string, payload interface{}, out interface{}) error {
	token, err := s.getToken()
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
		bodyReader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, s.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pesapal request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pesapal returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pesapal response: %v", err)
	}

	return nil
}

// SubmitOrder submits a payment order and returns the gateway tracking id
// and the hosted payment page URL.
func (s *PesapalService) SubmitOrder(order PesapalOrder) (*PesapalOrderResponse, error) {
	var orderResp PesapalOrderResponse
	if err := s.doJSON(http.MethodPost, "/api/Transactions/SubmitOrderRequest", order, &orderResp); err != nil {
		return nil, err
	}

	if orderResp.Error != nil {
		return nil, fmt.Errorf("pesapal order error: %s", orderResp.Error.Message)
	}
	if orderResp.RedirectURL == "" {
		return nil, fmt.Errorf("pesapal did not return a redirect URL")
	}

	return &orderResp, nil
}

// GetOrderStatus queries the authoritative status of a submitted order.
func (s *PesapalService) GetOrderStatus(orderTrackingID string) (*PesapalOrderStatus, error) {
	path := "/api/Transactions/GetTransactionStatus?orderTrackingId=" + url.QueryEscape(orderTrackingID)

	var status PesapalOrderStatus
	if err := s.doJSON(http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}

	if status.Error != nil && status.Error.Message != "" {
		return nil, fmt.Errorf("pesapal status error: %s", status.Error.Message)
	}

	return &status, nil
}

// RegisterIPN registers the notification endpoint with the gateway. Run once
// per environment; the returned ipn_id goes into PESAPAL_IPN_ID.
func (s *PesapalService) RegisterIPN(ipnURL string) (*PesapalIPNRegistration, error) {
	payload := map[string]string{
		"url":                   ipnURL,
		"ipn_notification_type": "POST",
	}

	var reg PesapalIPNRegistration
	if err := s.doJSON(http.MethodPost, "/api/URLSetup/RegisterIPN", payload, &reg); err != nil {
		return nil, err
	}

	if reg.IPNID == "" {
		return nil, fmt.Errorf("pesapal did not return an IPN id")
	}

	return &reg, nil
}
