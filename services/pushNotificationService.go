package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/models"
	"github.com/doug-martin/goqu/v9"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// PushNotificationService sends FCM pushes to registered admin dashboard
// devices when new activity arrives on the site.
type PushNotificationService struct {
	fcmClient *messaging.Client
}

type NotificationPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

var pushService *PushNotificationService

func InitPushNotificationService() {
	pushService = &PushNotificationService{}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	var app *firebase.App
	var err error

	if serviceAccountPath != "" {
		opt := option.WithCredentialsFile(serviceAccountPath)
		app, err = firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with service account: %v", err)
			return
		}
		log.Println("Firebase initialized with service account file")
	} else {
		app, err = firebase.NewApp(context.Background(), nil)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with ADC: %v", err)
			return
		}
		log.Println("Firebase initialized with Application Default Credentials")
	}

	pushService.fcmClient, err = app.Messaging(context.Background())
	if err != nil {
		log.Printf("Failed to get Firebase messaging client: %v", err)
		return
	}

	log.Println("Push notification service initialized successfully with FCM")
}

func GetPushNotificationService() *PushNotificationService {
	return pushService
}

// SendToAllAdmins pushes the payload to every registered admin device.
func (s *PushNotificationService) SendToAllAdmins(payload NotificationPayload) error {
	if s.fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	var tokens []models.AdminPushToken
	err := initializers.DB.From("admin_push_tokens").ScanStructs(&tokens)
	if err != nil {
		return fmt.Errorf("failed to load admin push tokens: %v", err)
	}

	if len(tokens) == 0 {
		return nil
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.PushToken)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokenStrings,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := s.fcmClient.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send FCM multicast: %v", err)
	}

	log.Printf("Sent admin push notification. Success: %d, Failure: %d",
		response.SuccessCount, response.FailureCount)

	if response.FailureCount > 0 {
		for i, resp := range response.Responses {
			if !resp.Success {
				log.Printf("Failed to send to token %s: %v", tokenStrings[i], resp.Error)
			}
		}
	}

	return nil
}

// SendToAdmin pushes the payload to a single admin's registered devices.
func (s *PushNotificationService) SendToAdmin(adminUserID int, payload NotificationPayload) error {
	if s.fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	var tokens []models.AdminPushToken
	err := initializers.DB.From("admin_push_tokens").
		Where(goqu.C("admin_user_id").Eq(adminUserID)).
		ScanStructs(&tokens)
	if err != nil {
		return fmt.Errorf("failed to load push tokens for admin %d: %v", adminUserID, err)
	}

	if len(tokens) == 0 {
		return fmt.Errorf("no push tokens found for admin %d", adminUserID)
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token.PushToken,
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Data: payload.Data,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, sendErr := s.fcmClient.Send(ctx, message)
		cancel()
		if sendErr != nil {
			log.Printf("Failed to send notification to token %s: %v", token.PushToken, sendErr)
			// Continue with other tokens even if one fails
		}
	}

	return nil
}
