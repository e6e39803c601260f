package controllers

import (
	"time"

	"github.com/GraceConnect/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockAdmin creates a sample admin account for testing
func MockAdmin() models.AdminUser {
	return models.AdminUser{
		ID:         1,
		Username:   "admin",
		Email:      "admin@example.com",
		Full_Name:  "Admin User",
		Created_At: time.Now(),
	}
}

// MockAdminWithPassword creates a sample admin with a bcrypt hashed password
// Password is "admin123" - use this in tests
func MockAdminWithPassword() models.AdminUser {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return models.AdminUser{
		ID:         1,
		Username:   "admin",
		Password:   string(hashedPassword),
		Email:      "admin@example.com",
		Full_Name:  "Admin User",
		Created_At: time.Now(),
	}
}

// MockDonation creates a sample pending donation for testing
func MockDonation() models.Donation {
	phone := "254712345678"
	return models.Donation{
		ID:             1,
		Full_Name:      "Jane Donor",
		Email:          "jane@example.com",
		Phone_Number:   &phone,
		Amount:         500,
		Currency:       "KES",
		Payment_Method: models.PaymentMethodMpesa,
		Transaction_ID: "TEMP_abc123",
		Payment_Status: models.PaymentStatusPending,
		Created_At:     time.Now(),
		Updated_At:     time.Now(),
	}
}

// MockPrayerRequest creates a sample unread prayer request for testing
func MockPrayerRequest() models.PrayerRequest {
	return models.PrayerRequest{
		ID:           1,
		Full_Name:    "John Member",
		Email:        "john@example.com",
		Subject:      "Healing for my mother",
		Message:      "Please pray for my mother's recovery.",
		Prayer_Type:  models.PrayerTypeHealing,
		Is_Anonymous: false,
		Status:       models.RequestStatusUnread,
		Created_At:   time.Now(),
		Updated_At:   time.Now(),
	}
}

// MockStory creates a sample published story for testing
func MockStory() models.Story {
	excerpt := "A short excerpt"
	return models.Story{
		ID:               1,
		Title:            "A Story of Faith",
		Content:          "Full story content goes here.",
		Excerpt:          &excerpt,
		Category:         "testimony",
		Contributor_Name: "Mary Member",
		Status:           models.StoryStatusPublished,
		Featured:         false,
		Created_At:       time.Now(),
		Updated_At:       time.Now(),
	}
}
