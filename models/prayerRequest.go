package models

import "time"

// Prayer type constants
const (
	PrayerTypeGeneral      = "general"
	PrayerTypeHealing      = "healing"
	PrayerTypeFamily       = "family"
	PrayerTypeFinancial    = "financial"
	PrayerTypeGuidance     = "guidance"
	PrayerTypeThanksgiving = "thanksgiving"
	PrayerTypeOther        = "other"
)

// Prayer request status constants
const (
	RequestStatusUnread     = "unread"
	RequestStatusInProgress = "in_progress"
	RequestStatusPrayedFor  = "prayed_for"
	RequestStatusResolved   = "resolved"
	RequestStatusArchived   = "archived"
)

type PrayerRequest struct {
	ID           int       `json:"id" goqu:"skipinsert"`
	Full_Name    string    `json:"fullName"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Prayer_Type  string    `json:"prayerType"`
	Is_Anonymous bool      `json:"isAnonymous"`
	Status       string    `json:"status"`
	Created_At   time.Time `json:"createdAt" goqu:"skipinsert"`
	Updated_At   time.Time `json:"updatedAt" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
	PrayerType  string `json:"prayerType" binding:"required,oneof=general healing family financial guidance thanksgiving other"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type RequestStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=unread in_progress prayed_for resolved archived"`
}

type PrayerRequestStats struct {
	Total_Requests       int `json:"totalRequests"`
	Unread_Requests      int `json:"unreadRequests"`
	In_Progress_Requests int `json:"inProgressRequests"`
	Resolved_Requests    int `json:"resolvedRequests"`
	Recent_Requests      int `json:"recentRequests"`
}
