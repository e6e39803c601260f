package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/GraceConnect/controllers"
	"github.com/GraceConnect/initializers"
	"github.com/GraceConnect/middlewares"
	"github.com/GraceConnect/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitPesapalService()
	services.InitPushNotificationService()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)

	api := router.Group("/api")
	{
		// public content
		api.GET("/sermons", controllers.GetSermons)
		api.GET("/sermons/latest", controllers.GetLatestSermon)
		api.GET("/sermons/next", controllers.GetNextSermon)
		api.GET("/sermons/tags", controllers.GetSermonTags)
		api.GET("/sermons/preachers", controllers.GetSermonPreachers)

		api.GET("/events/upcoming", controllers.GetUpcomingEvents)
		api.GET("/events/past", controllers.GetPastEvents)
		api.POST("/events/rsvp", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.SubmitEventRSVP)

		api.GET("/ministries", controllers.GetMinistries)
		api.POST("/ministries/signup", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.SubmitMinistrySignup)

		api.GET("/stories", controllers.GetPublishedStories)
		api.GET("/stories/:story_id", controllers.GetPublishedStory)

		api.POST("/prayer-requests", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.SubmitPrayerRequest)

		api.POST("/subscribe", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.Subscribe)

		api.GET("/settings", controllers.GetSettings)

		// donation and payment flow
		api.POST("/donations", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.CreateDonation)
		api.PATCH("/donations", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.UpdateDonationStatus)
		api.GET("/donations", controllers.GetDonation)

		api.POST("/payments/order", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.CreatePaymentOrder)
		api.POST("/payments/ipn", controllers.HandleIPN)
		api.GET("/payments/status", controllers.GetPaymentStatus)
	}

	router.POST("/api/admin/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.AdminLogin)

	admin := router.Group("/api/admin")
	admin.Use(middlewares.CheckAuth)
	admin.Use(middlewares.CheckAdmin)
	{
		admin.GET("/me", controllers.GetAdminProfile)
		admin.POST("/push-token", controllers.StorePushToken)

		// activity feed
		admin.GET("/notifications", controllers.GetNotifications)
		admin.GET("/notifications/unread-count", controllers.GetUnreadNotificationCount)
		admin.PATCH("/notifications/:notification_id/read", controllers.MarkNotificationRead)
		admin.PATCH("/notifications/mark-all-read", controllers.MarkAllNotificationsRead)

		// donations
		admin.GET("/donations", controllers.GetDonations)
		admin.GET("/donations/stats", controllers.GetDonationStats)
		admin.DELETE("/donations/:donation_id", controllers.DeleteDonation)

		// sermons
		admin.GET("/sermons", controllers.GetAllSermons)
		admin.POST("/sermons", controllers.CreateSermon)
		admin.PUT("/sermons/:sermon_id", controllers.UpdateSermon)
		admin.DELETE("/sermons/:sermon_id", controllers.DeleteSermon)

		// events
		admin.GET("/events", controllers.GetEvents)
		admin.GET("/events/rsvps", controllers.GetEventRSVPs)
		admin.POST("/events", controllers.CreateEvent)
		admin.PUT("/events/:event_id", controllers.UpdateEvent)
		admin.DELETE("/events/:event_id", controllers.DeleteEvent)

		// ministries and signups
		admin.POST("/ministries", controllers.CreateMinistry)
		admin.PUT("/ministries/:ministry_id", controllers.UpdateMinistry)
		admin.DELETE("/ministries/:ministry_id", controllers.DeleteMinistry)
		admin.GET("/signups", controllers.GetMinistrySignups)
		admin.PATCH("/signups/:signup_id", controllers.UpdateSignupStatus)

		// stories
		admin.GET("/stories", controllers.GetStories)
		admin.GET("/stories/stats", controllers.GetStoryStats)
		admin.POST("/stories", controllers.CreateStory)
		admin.PUT("/stories/:story_id", controllers.UpdateStory)
		admin.DELETE("/stories", controllers.DeleteStory)

		// prayer requests
		admin.GET("/requests", controllers.GetPrayerRequests)
		admin.GET("/requests/stats", controllers.GetPrayerRequestStats)
		admin.GET("/requests/:request_id", controllers.GetPrayerRequest)
		admin.PATCH("/requests/:request_id/status", controllers.UpdatePrayerRequestStatus)
		admin.DELETE("/requests/:request_id", controllers.DeletePrayerRequest)

		// subscribers
		admin.GET("/subscribers", controllers.GetSubscribers)
		admin.GET("/subscribers/export", controllers.ExportSubscribers)
		admin.DELETE("/subscribers/:subscriber_id", controllers.DeleteSubscriber)

		// site settings
		admin.PUT("/settings", controllers.UpdateSettings)

		// payment gateway setup
		admin.POST("/payments/register-ipn", controllers.RegisterIPNURL)
		admin.POST("/test/email", controllers.TestEmail)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
