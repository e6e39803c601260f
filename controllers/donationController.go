package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateDonation saves a donation record with "pending" status before the
// donor is sent to the payment gateway.
func CreateDonation(c *gin.Context) {
	var req models.DonationCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Amount must be greater than zero"})
		return
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		// Temporary reference until the gateway assigns a tracking id
		transactionID = "TEMP_" + uuid.NewString()
	}

	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}

	donation := models.Donation{
		Full_Name:      req.FullName,
		Email:          req.Email,
		Amount:         req.Amount,
		Payment_Method: req.PaymentMethod,
		Transaction_ID: transactionID,
		Payment_Status: models.PaymentStatusPending,
		Currency:       currency,
	}
	if req.PhoneNumber != "" {
		donation.Phone_Number = &req.PhoneNumber
	}
	if req.Message != "" {
		donation.Message = &req.Message
	}

	var donationID int
	insert := initializers.DB.Insert("donations").Rows(donation).Returning("id")
	_, err := insert.Executor().ScanVal(&donationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":             donationID,
			"transaction_id": transactionID,
			"payment_status": models.PaymentStatusPending,
		},
	})
}

// normalizeDonationStatus maps gateway status descriptions onto the stored
// payment_status enum.
func normalizeDonationStatus(status string) (string, bool) {
	switch strings.ToLower(status) {
	case models.PaymentStatusCompleted:
		return models.PaymentStatusCompleted, true
	case models.PaymentStatusFailed, "invalid", "reversed":
		return models.PaymentStatusFailed, true
	case models.PaymentStatusPending:
		return models.PaymentStatusPending, true
	default:
		return "", false
	}
}

// applyDonationStatus persists a status change. A terminal status is never
// overwritten back to pending, so stale gateway replays are harmless.
// Returns whether a row was updated.
func applyDonationStatus(donationID int, status string, pesapalData string, errorMessage string) (bool, error) {
	record := goqu.Record{
		"payment_status": status,
		"updated_at":     goqu.L("NOW()"),
	}
	if pesapalData != "" {
		record["pesapal_data"] = pesapalData
	}
	if errorMessage != "" {
		record["error_message"] = errorMessage
	}
	if status == models.PaymentStatusCompleted {
		record["completed_at"] = goqu.L("NOW()")
	}

	update := initializers.DB.Update("donations").
		Set(record).
		Where(goqu.C("id").Eq(donationID))

	if status == models.PaymentStatusPending {
		update = update.Where(goqu.C("payment_status").Eq(models.PaymentStatusPending))
	}

	result, err := update.Executor().Exec()
	if err != nil {
		return false, err
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// UpdateDonationStatus is the PATCH endpoint used by the IPN handler and the
// browser-side failure path.
func UpdateDonationStatus(c *gin.Context) {
	var req models.DonationStatusUpdate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	status, ok := normalizeDonationStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown payment status: " + req.Status})
		return
	}

	updated, err := applyDonationStatus(req.DonationID, status, req.PesapalData, req.Error)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":             req.DonationID,
			"payment_status": status,
		},
	})
}

// GetDonation fetches a single donation by the id query parameter.
func GetDonation(c *gin.Context) {
	donationID := c.Query("id")
	if donationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Donation ID is required"})
		return
	}

	id, err := strconv.Atoi(donationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid donation ID", "details": err.Error()})
		return
	}

	var donation models.Donation
	found, err := initializers.DB.From("donations").
		Select("*").
		Where(goqu.C("id").Eq(id)).
		ScanStruct(&donation)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": donation})
}

// GetDonations returns all donations for the admin dashboard, newest first.
func GetDonations(c *gin.Context) {
	var donations []models.Donation

	err := initializers.DB.From("donations").
		Select("*").
		Order(goqu.C("created_at").Desc()).
		ScanStructs(&donations)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donations)
}

// GetDonationStats aggregates totals for the admin dashboard cards.
func GetDonationStats(c *gin.Context) {
	type donationRow struct {
		Amount         float64
		Payment_Status string
	}

	var rows []donationRow
	err := initializers.DB.From("donations").
		Select("amount", "payment_status").
		ScanStructs(&rows)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := models.DonationStats{Total_Donations: len(rows)}
	for _, row := range rows {
		stats.Total_Amount += row.Amount
		switch row.Payment_Status {
		case models.PaymentStatusCompleted:
			stats.Completed_Donations++
		case models.PaymentStatusPending:
			stats.Pending_Donations++
		}
	}
	if stats.Total_Donations > 0 {
		stats.Average_Donation = stats.Total_Amount / float64(stats.Total_Donations)
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteDonation removes a donation record by id.
func DeleteDonation(c *gin.Context) {
	donationID, err := strconv.Atoi(c.Param("donation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID", "details": err.Error()})
		return
	}

	deleteQuery := initializers.DB.Delete("donations").
		Where(goqu.C("id").Eq(donationID))

	result, err := deleteQuery.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted successfully"})
}
