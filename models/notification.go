package models

import "time"

// Notification type constants (admin activity feed)
const (
	NotificationTypeDonation       = "donation"
	NotificationTypePrayerRequest  = "prayer_request"
	NotificationTypeMinistrySignup = "ministry_signup"
	NotificationTypeSubscriber     = "subscriber"
	NotificationTypeStory          = "story"
	NotificationTypeEvent          = "event"
	NotificationTypeSermon         = "sermon"
)

type Notification struct {
	ID                int       `json:"id" goqu:"skipinsert"`
	Notification_Type string    `json:"notificationType"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Link              string    `json:"link"`
	Created_At        time.Time `json:"createdAt" goqu:"skipinsert"`
}

// NotificationItem is a Notification joined with the requesting admin's
// read receipt.
type NotificationItem struct {
	ID                int       `json:"id"`
	Notification_Type string    `json:"notificationType"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Link              string    `json:"link"`
	Created_At        time.Time `json:"createdAt"`
	Is_Read           bool      `json:"isRead"`
}

type NotificationRead struct {
	ID              int       `json:"id" goqu:"skipinsert"`
	Admin_User_ID   int       `json:"adminUserId"`
	Notification_ID int       `json:"notificationId"`
	Created_At      time.Time `json:"createdAt" goqu:"skipinsert"`
}
