package main

import (
	"log"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/config"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/database"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/github"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/handlers"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/middleware"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	_ "github.com/JanHolesovsky/AI-Academy-Dashboard-JH/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           AI Academy Dashboard API
// @version         1.0
// @description     Cohort tracking for the AI Academy: GitHub webhook ingestion, scoring, achievements, leaderboards and mentor reviews
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	if cfg.WebhookSecret == "" {
		log.Println("GITHUB_WEBHOOK_SECRET not set, webhook deliveries will be rejected")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	contentClient := github.NewContentClient(cfg.RawContentBaseURL, cfg.AcademyRepo)

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	activityService := services.NewActivityService(db)
	participantService := services.NewParticipantService(db)
	assignmentService := services.NewAssignmentService(db)
	submissionService := services.NewSubmissionService(db)
	achievementService := services.NewAchievementService(db, activityService)
	statsService := services.NewStatsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	webhookHandler := handlers.NewWebhookHandler(cfg.WebhookSecret, submissionService, achievementService, activityService, contentClient)
	reviewHandler := handlers.NewReviewHandler(submissionService, achievementService, activityService)
	participantHandler := handlers.NewParticipantHandler(participantService, activityService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	statsHandler := handlers.NewStatsHandler(statsService, activityService)
	adminHandler := handlers.NewAdminHandler(submissionService, assignmentService)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/webhook/github", webhookHandler.Handle)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.POST("/participants", participantHandler.Register)
		api.GET("/participants", participantHandler.List)
		api.GET("/participants/:username", participantHandler.Get)

		api.GET("/assignments", assignmentHandler.List)
		api.GET("/achievements", achievementHandler.List)

		api.GET("/leaderboard", statsHandler.Leaderboard)
		api.GET("/progress", statsHandler.Progress)
		api.GET("/teams", statsHandler.Teams)
		api.GET("/stats", statsHandler.Dashboard)
		api.GET("/activity", statsHandler.Activity)

		api.POST("/reviews", reviewHandler.Review)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService))
		{
			admin.GET("/pending", adminHandler.PendingReviews)
			admin.PUT("/assignments/:id", adminHandler.UpdateAssignment)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
