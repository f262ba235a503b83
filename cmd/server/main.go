package main

import (
	"log"

	"github.com/ailtonganem/Lara/internal/config"
	"github.com/ailtonganem/Lara/internal/database"
	"github.com/ailtonganem/Lara/internal/handlers"
	"github.com/ailtonganem/Lara/internal/middleware"
	"github.com/ailtonganem/Lara/internal/services"
	"github.com/ailtonganem/Lara/internal/store/postgres"
	"github.com/ailtonganem/Lara/internal/ws"

	_ "github.com/ailtonganem/Lara/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Lara Learning Platform API
// @version         1.0
// @description     API for the Lara education platform: content hierarchy, user approval and quiz grading
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	accountRepo := postgres.NewAccountRepository(db)
	userRepo := postgres.NewUserRepository(db)
	contentRepo := postgres.NewContentRepository(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(accountRepo, userRepo, cfg.JWTSecret)
	contentService := services.NewContentService(contentRepo)
	adminService := services.NewAdminService(contentRepo)
	approvalService := services.NewApprovalService(userRepo, hub)
	scoringService := services.NewScoringService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(authService)
	contentHandler := handlers.NewContentHandler(contentService, scoringService)
	adminHandler := handlers.NewAdminHandler(adminService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	wsHandler := handlers.NewWSHandler(hub, authService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		session := api.Group("/session")
		session.Use(middleware.JWTAuth(authService))
		{
			session.GET("/screen", sessionHandler.GetScreen)
		}

		subjects := api.Group("/subjects")
		subjects.Use(middleware.JWTAuth(authService), middleware.RequireApproved(authService))
		{
			subjects.GET("", contentHandler.ListSubjects)
			subjects.GET("/:id/modules", contentHandler.ListModules)
			subjects.GET("/:id/modules/:module_id/activities", contentHandler.ListActivities)
			subjects.GET("/:id/modules/:module_id/activities/:activity_id", contentHandler.GetActivity)
			subjects.POST("/:id/modules/:module_id/activities/:activity_id/submit", contentHandler.SubmitQuiz)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.RequireAdmin(authService))
		{
			admin.GET("/users/pending", approvalHandler.ListPending)
			admin.POST("/users/:id/approve", approvalHandler.Approve)

			admin.POST("/subjects", adminHandler.CreateSubject)
			admin.PUT("/subjects/:id", adminHandler.UpdateSubject)
			admin.DELETE("/subjects/:id", adminHandler.DeleteSubject)

			admin.POST("/subjects/:id/modules", adminHandler.CreateModule)
			admin.PUT("/subjects/:id/modules/:module_id", adminHandler.UpdateModule)
			admin.DELETE("/subjects/:id/modules/:module_id", adminHandler.DeleteModule)

			admin.POST("/subjects/:id/modules/:module_id/activities", adminHandler.CreateActivity)
			admin.PUT("/subjects/:id/modules/:module_id/activities/:activity_id", adminHandler.UpdateActivity)
			admin.DELETE("/subjects/:id/modules/:module_id/activities/:activity_id", adminHandler.DeleteActivity)
		}
	}

	addr := ":" + cfg.ServerPort
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
