package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"pedaltrack-api/config"
	"pedaltrack-api/controllers"
	"pedaltrack-api/middleware"
	"pedaltrack-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	bikeController := controllers.NewBikeController(db)
	usageRecordController := controllers.NewUsageRecordController(db)
	maintenanceController := controllers.NewMaintenanceController(db)

	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ValidateJSON())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Bike routes
		bikes := protected.Group("/bikes")
		{
			bikes.GET("", bikeController.GetBikes)
			bikes.POST("", bikeController.CreateBike)
			bikes.GET("/:id", bikeController.GetBike)
		}

		protected.POST("/usage-records", usageRecordController.CreateUsageRecord)
		protected.POST("/maintenance-alerts", maintenanceController.CreateMaintenanceAlert)
		protected.POST("/maintenance-checklist", maintenanceController.CreateChecklistItem)
	}
}
