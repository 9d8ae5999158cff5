package routes

import (
	"certification-api/controllers"
	"certification-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Public status view behind the tracking id
			public.GET("/track/:tracking_id", controllers.TrackApplication)

			// Wizard metadata and contextual help
			public.GET("/wizard/steps", controllers.GetWizardSteps)
			public.GET("/wizard/guidance/:step/:substep", controllers.GetGuidance)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Certification API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)

			// Applications
			applications := protected.Group("/applications")
			{
				applications.POST("/tracking-id", controllers.MintTrackingID)
				applications.GET("", controllers.GetApplications)
				applications.GET("/:tracking_id", controllers.GetApplication)
				applications.PUT("/:tracking_id", controllers.SaveDraft)
				applications.POST("/validate-step", controllers.ValidateStep)
				applications.POST("/:tracking_id/submit", controllers.SubmitApplication)

				// Document uploads per named category
				applications.GET("/:tracking_id/documents", controllers.GetDocuments)
				applications.POST("/:tracking_id/documents/:slot", controllers.UploadDocument)
				applications.DELETE("/:tracking_id/documents/:slot", controllers.DeleteDocument)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}

			// Admin review
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/applications", controllers.AdminListApplications)
				admin.PUT("/applications/:tracking_id/status", controllers.AdminUpdateStatus)
				admin.GET("/analytics", controllers.AdminAnalytics)
			}
		}
	}
}
