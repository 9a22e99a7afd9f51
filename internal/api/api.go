// Package api wires the HTTP handlers to the service layer.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/config"
	"github.com/AmrIbrahim41/tfg-backend/internal/database"
	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/pdfdoc"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
)

// SetupAPI builds the service graph and registers every route under /api/v1.
// redisClient and s3cfg may be nil; the endpoints that need them degrade
// rather than take the whole API down.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, s3cfg *config.S3Config) {
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := database.HealthCheck(ctx, cfg); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = err.Error()
		}
		c.JSON(status, gin.H{
			"status":   "up",
			"database": dbStatus,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(db, cfg.JWTSecret)
		clientService := service.NewClientService(db)
		subscriptionService := service.NewSubscriptionService(db)
		trainingService := service.NewTrainingService(db)
		foodService := service.NewFoodService(db, redisClient)
		nutritionService := service.NewNutritionService(db, foodService)
		photoService := service.NewPhotoService(s3cfg)
		dashboardService := service.NewDashboardService(db)
		reportService := service.NewReportService(
			nutritionService, subscriptionService, trainingService,
			pdfdoc.NewRenderer(cfg.FontDir))

		pdfLimiter := middleware.NewPDFGenerationRateLimiter(redisClient)

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		clientHandler := NewClientHandler(clientService, photoService, authService)
		subscriptionHandler := NewSubscriptionHandler(subscriptionService, authService)
		trainingHandler := NewTrainingHandler(trainingService, authService)
		nutritionHandler := NewNutritionHandler(nutritionService, reportService, authService, pdfLimiter)
		foodHandler := NewFoodHandler(foodService, authService)
		dashboardHandler := NewDashboardHandler(dashboardService, authService)

		// Register routes
		authHandler.RegisterRoutes(v1)
		clientHandler.RegisterRoutes(v1)
		subscriptionHandler.RegisterRoutes(v1)
		trainingHandler.RegisterRoutes(v1)
		nutritionHandler.RegisterRoutes(v1)
		foodHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
	}
}
