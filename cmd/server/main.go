package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/melodytrail/backend/internal/common/database"
	commonHandlers "github.com/melodytrail/backend/internal/common/handlers"
	"github.com/melodytrail/backend/internal/common/health"
	"github.com/melodytrail/backend/internal/common/middleware"
	trailHandlers "github.com/melodytrail/backend/internal/trail/handlers"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/services"
	"github.com/melodytrail/backend/pkg/config"
	"github.com/melodytrail/backend/pkg/logger"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (SQLite for development, PostgreSQL for production)
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(
		&models.Student{},
		&models.ProgressRecord{},
		&models.RateLimitBucket{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Apply rate limit policy from configuration
	services.ConfigureRateLimit(cfg.RateLimit.MaxTokens, cfg.RateLimit.WindowSeconds)

	// Create Gin engine
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(database.GetDB(), version)
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		trailGroup := v1.Group("/trail")
		{
			trailGroup.GET("/nodes", middleware.AuthRequired(), trailHandlers.GetTrailNodes)
			trailGroup.GET("/nodes/:id", trailHandlers.GetNodeByID)
			trailGroup.GET("/nodes/:id/rate-limit", middleware.AuthRequired(), trailHandlers.GetNodeRateLimit)
			trailGroup.POST("/completions", middleware.AuthRequired(), trailHandlers.SubmitCompletion)
			trailGroup.GET("/progress", middleware.AuthRequired(), trailHandlers.GetProgress)
			trailGroup.GET("/progress/stats", middleware.AuthRequired(), trailHandlers.GetTrailStats)
			trailGroup.DELETE("/progress", middleware.AuthRequired(), trailHandlers.ResetProgress)
			trailGroup.GET("/recommendation", middleware.AuthRequired(), trailHandlers.GetRecommendation)
			trailGroup.GET("/level", middleware.AuthRequired(), trailHandlers.GetLevel)
			trailGroup.GET("/leaderboard", trailHandlers.GetLeaderboard)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting MelodyTrail server",
		zap.String("address", address),
		zap.String("env", cfg.Server.Env),
		zap.String("db_type", cfg.Database.Type),
	)
	logger.Info(fmt.Sprintf("MelodyTrail listening on http://%s", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
