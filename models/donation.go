package models

import "time"

// Payment method constants
const (
	PaymentMethodMpesa  = "mpesa"
	PaymentMethodCard   = "card"
	PaymentMethodBank   = "bank"
	PaymentMethodPaypal = "paypal"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Donation struct {
	ID             int        `json:"id" goqu:"skipinsert"`
	Full_Name      string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone_Number   *string    `json:"phoneNumber"`
	Amount         float64    `json:"amount"`
	Message        *string    `json:"message"`
	Payment_Method string     `json:"paymentMethod"`
	Transaction_ID string     `json:"transactionId"`
	Mpesa_Receipt  *string    `json:"mpesaReceipt"`
	Bank_Reference *string    `json:"bankReference"`
	Payment_Status string     `json:"paymentStatus"`
	Currency       string     `json:"currency"`
	Pesapal_Data   *string    `json:"pesapalData"`
	Error_Message  *string    `json:"errorMessage"`
	Completed_At   *time.Time `json:"completedAt" goqu:"skipinsert"`
	Created_At     time.Time  `json:"createdAt" goqu:"skipinsert"`
	Updated_At     time.Time  `json:"updatedAt" goqu:"skipinsert"`
}

type DonationCreate struct {
	FullName      string  `json:"fullName" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	PhoneNumber   string  `json:"phoneNumber"`
	Amount        float64 `json:"amount" binding:"required"`
	Message       string  `json:"message"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=mpesa card bank paypal"`
	TransactionID string  `json:"transactionId"`
	PaymentStatus string  `json:"paymentStatus"`
	Currency      string  `json:"currency"`
}

type DonationStatusUpdate struct {
	DonationID  int    `json:"donationId" binding:"required"`
	Status      string `json:"status" binding:"required"`
	PesapalData string `json:"pesapalData"`
	Error       string `json:"error"`
}

type DonationStats struct {
	Total_Donations     int     `json:"totalDonations"`
	Total_Amount        float64 `json:"totalAmount"`
	Completed_Donations int     `json:"completedDonations"`
	Pending_Donations   int     `json:"pendingDonations"`
	Average_Donation    float64 `json:"averageDonation"`
}
