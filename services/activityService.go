package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
)

// RecordActivity writes an entry to the admin activity feed and pushes it to
// registered admin devices. Failures are logged and never surfaced to the
// public request that triggered the activity.
func RecordActivity(notificationType string, title string, description string, link string) {
	notification := models.Notification{
		Notification_Type: notificationType,
		Title:             title,
		Description:       description,
		Link:              link,
	}

	insert := initializers.DB.Insert("notifications").Rows(notification)
	_, err := insert.Executor().Exec()
	if err != nil {
		log.Printf("Failed to record %s activity: %v", notificationType, err)
	}

	pushService := GetPushNotificationService()
	if pushService == nil {
		return
	}

	payload := NotificationPayload{
		Title: title,
		Body:  description,
		Data: map[string]string{
			"type": notificationType,
			"link": link,
		},
	}

	if err := pushService.SendToAllAdmins(payload); err != nil {
		log.Printf("Failed to push %s activity to admins: %v", notificationType, err)
	}
}

// NotifyDonationReceived records a completed donation on the activity feed.
func NotifyDonationReceived(fullName string, amount float64, currency string) {
	description := fmt.Sprintf("%s donated %s %s", fullName, currency, strconv.FormatFloat(amount, 'f', -1, 64))
	RecordActivity(models.NotificationTypeDonation, "New Donation", description, "/admin/donations")
}

// NotifyPrayerRequestSubmitted records a new prayer request. Anonymous
// requests do not reveal the requester's name on the feed.
func NotifyPrayerRequestSubmitted(fullName string, subject string, isAnonymous bool) {
	description := subject
	if !isAnonymous && fullName != "" {
		description = fmt.Sprintf("%s: %s", fullName, subject)
	}
	RecordActivity(models.NotificationTypePrayerRequest, "New Prayer Request", description, "/admin/requests")
}

// NotifyMinistrySignup records a new ministry signup.
func NotifyMinistrySignup(fullName string, ministryName string) {
	description := fmt.Sprintf("%s signed up for %s", fullName, ministryName)
	RecordActivity(models.NotificationTypeMinistrySignup, "New Ministry Signup", description, "/admin/ministries")
}

// NotifyNewSubscriber records a newsletter subscription.
func NotifyNewSubscriber(email string) {
	RecordActivity(models.NotificationTypeSubscriber, "New Subscriber", email, "/admin/subscriptions")
}
