package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
	"github.com/GraceConnect/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// MinimumDonationAmount is the smallest amount the gateway is ever asked to
// process, in the site currency (Ksh).
const MinimumDonationAmount = 10

type PaymentOrderRequest struct {
	Amount            float64 `json:"amount"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MerchantReference string  `json:"merchantReference"`
}

type IPNRequest struct {
	OrderTrackingID   string `json:"OrderTrackingId"`
	OrderMerchantRef  string `json:"OrderMerchantReference"`
	Status            string `json:"Status"`
}

// formatPhoneNumber normalizes Kenyan numbers to international 254... form.
func formatPhoneNumber(phone string) string {
	var cleaned strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			cleaned.WriteRune(r)
		}
	}

	digits := cleaned.String()
	switch {
	case strings.HasPrefix(digits, "0"):
		return "254" + digits[1:]
	case strings.HasPrefix(digits, "254"):
		return digits
	case strings.HasPrefix(digits, "7"):
		return "254" + digits
	default:
		return digits
	}
}

// splitName divides a donor's full name into the first/last parts the
// gateway's billing address requires.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", "User"
	}
	if len(parts) == 1 {
		return parts[0], "User"
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// markDonationFailed records a gateway failure against the pending record.
func markDonationFailed(merchantReference string, errorMessage string) {
	donationID, err := strconv.Atoi(merchantReference)
	if err != nil {
		return
	}

	if _, err := applyDonationStatus(donationID, models.PaymentStatusFailed, "", errorMessage); err != nil {
		log.Printf("Failed to mark donation %d as failed: %v", donationID, err)
	}
}

// CreatePaymentOrder submits a payment order to the gateway and returns the
// hosted payment page URL. Validation happens before any gateway call.
func CreatePaymentOrder(c *gin.Context) {
	var req PaymentOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Amount == 0 || req.Email == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: amount, email, and name are required",
		})
		return
	}

	if req.Amount < MinimumDonationAmount {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Minimum donation amount is Ksh 10",
		})
		return
	}

	pesapal := services.GetPesapalService()
	if pesapal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Payment service not available"})
		return
	}

	firstName, lastName := splitName(req.Name)

	description := req.Description
	if description == "" {
		description = "Church Donation"
	}

	order := services.PesapalOrder{
		ID:             req.MerchantReference,
		Currency:       "KES",
		Amount:         req.Amount,
		Description:    description,
		CallbackURL:    os.Getenv("APP_URL") + "/donation/success",
		NotificationID: os.Getenv("PESAPAL_IPN_ID"),
		BillingAddress: services.PesapalBillingAddress{
			EmailAddress: req.Email,
			PhoneNumber:  formatPhoneNumber(req.Phone),
			CountryCode:  "KE",
			FirstName:    firstName,
			LastName:     lastName,
		},
	}

	orderResp, err := pesapal.SubmitOrder(order)
	if err != nil {
		log.Printf("Payment order error for reference %s: %v", req.MerchantReference, err)
		markDonationFailed(req.MerchantReference, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create payment order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orderResp})
}

// HandleIPN receives the gateway's asynchronous payment notification. The
// callback status field is never trusted; the authoritative status is
// re-queried from the gateway before anything is written.
func HandleIPN(c *gin.Context) {
	var req IPNRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "IPN processing failed", "details": err.Error()})
		return
	}

	log.Printf("IPN received: tracking=%s reference=%s status=%s",
		req.OrderTrackingID, req.OrderMerchantRef, req.Status)

	pesapal := services.GetPesapalService()
	if pesapal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment service not available"})
		return
	}

	orderStatus, err := pesapal.GetOrderStatus(req.OrderTrackingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "IPN processing failed", "details": err.Error()})
		return
	}

	updated := false
	donationID, convErr := strconv.Atoi(req.OrderMerchantRef)
	if convErr != nil {
		log.Printf("IPN merchant reference %q is not a donation id: %v", req.OrderMerchantRef, convErr)
	} else if status, ok := normalizeDonationStatus(orderStatus.PaymentStatusDescription); !ok {
		log.Printf("IPN carried unknown gateway status %q for donation %d", orderStatus.PaymentStatusDescription, donationID)
	} else {
		rawStatus, _ := json.Marshal(orderStatus)

		updated, err = applyDonationStatus(donationID, status, string(rawStatus), "")
		if err != nil {
			log.Printf("Failed to update donation %d from IPN: %v", donationID, err)
			updated = false
		}

		if updated && status == models.PaymentStatusCompleted {
			confirmDonationCompleted(donationID)
		}
	}

	// Always 200 so the gateway does not retry delivery; donationUpdated
	// reports whether the internal update landed.
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "IPN processed successfully",
		"donationUpdated": updated,
	})
}

// confirmDonationCompleted sends the donor a receipt and records the
// donation on the admin activity feed.
func confirmDonationCompleted(donationID int) {
	var donation models.Donation
	found, err := initializers.DB.From("donations").
		Select("*").
		Where(goqu.C("id").Eq(donationID)).
		ScanStruct(&donation)

	if err != nil || !found {
		log.Printf("Could not load completed donation %d: %v", donationID, err)
		return
	}

	if emailService := services.GetEmailService(); emailService != nil {
		if err := emailService.SendDonationReceiptEmail(donation.Email, donation.Full_Name,
			donation.Amount, donation.Currency, donation.Transaction_ID); err != nil {
			log.Printf("Failed to send receipt for donation %d: %v", donationID, err)
		}
	}

	services.NotifyDonationReceived(donation.Full_Name, donation.Amount, donation.Currency)
}

// GetPaymentStatus verifies an order directly with the gateway. The success
// page polls this after the donor is redirected back.
func GetPaymentStatus(c *gin.Context) {
	orderTrackingID := c.Query("orderTrackingId")
	if orderTrackingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "orderTrackingId is required"})
		return
	}

	pesapal := services.GetPesapalService()
	if pesapal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Payment service not available"})
		return
	}

	orderStatus, err := pesapal.GetOrderStatus(orderTrackingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to verify payment status", "details": err.Error()})
		return
	}

	data := gin.H{
		"status":             strings.ToUpper(orderStatus.PaymentStatusDescription),
		"amount":             orderStatus.Amount,
		"payment_method":     orderStatus.PaymentMethod,
		"confirmation_code":  orderStatus.ConfirmationCode,
		"merchant_reference": orderStatus.MerchantReference,
	}

	// Attach the stored record when the merchant reference resolves, so the
	// success page can show the transaction id and donor details.
	if donationID, convErr := strconv.Atoi(orderStatus.MerchantReference); convErr == nil {
		var donation models.Donation
		found, dbErr := initializers.DB.From("donations").
			Select("*").
			Where(goqu.C("id").Eq(donationID)).
			ScanStruct(&donation)
		if dbErr == nil && found {
			data["transaction_id"] = donation.Transaction_ID
			data["payment_status"] = donation.Payment_Status
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// RegisterIPNURL registers the notification endpoint with the gateway. Run
// once per environment; the returned ipn_id goes into PESAPAL_IPN_ID.
func RegisterIPNURL(c *gin.Context) {
	pesapal := services.GetPesapalService()
	if pesapal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment service not available"})
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	_ = c.ShouldBindJSON(&req)

	ipnURL := req.URL
	if ipnURL == "" {
		ipnURL = os.Getenv("APP_URL") + "/api/payments/ipn"
	}

	reg, err := pesapal.RegisterIPN(ipnURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register IPN URL", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "IPN URL registered successfully",
		"ipn_id":  reg.IPNID,
		"url":     reg.URL,
	})
}
