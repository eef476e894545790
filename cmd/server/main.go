package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/adapters/event"
	httpAdapter "github.com/khoahotran/foliohub/adapters/http"
	"github.com/khoahotran/foliohub/adapters/media_storage"
	"github.com/khoahotran/foliohub/adapters/persistence"
	"github.com/khoahotran/foliohub/internal/application/service"
	authUC "github.com/khoahotran/foliohub/internal/application/usecase/auth"
	portfolioUC "github.com/khoahotran/foliohub/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/foliohub/internal/application/usecase/profile"
	sectionUC "github.com/khoahotran/foliohub/internal/application/usecase/section"
	"github.com/khoahotran/foliohub/internal/config"
	"github.com/khoahotran/foliohub/pkg/auth"
	"github.com/khoahotran/foliohub/pkg/logger"
	"github.com/khoahotran/foliohub/pkg/tracing"
)

func main() {
	fmt.Println("Start FolioHub API Server...")

	// Load configuration. Validation makes a missing JWT secret or DB DSN
	// fatal before anything listens.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional
	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "foliohub-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Redis cache for the public portfolio endpoint, optional
	var portfolioCache portfolioUC.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		portfolioCache = persistence.NewRedisPortfolioCache(redisClient)
	} else {
		appLogger.Warn("REDIS_ADDR not set, portfolio caching disabled")
	}

	// Kafka producer for portfolio mutation events, optional
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
	} else {
		appLogger.Warn("KAFKA_BROKERS not set, portfolio events disabled")
	}

	// Cloudinary uploader for avatars, optional
	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
	} else {
		appLogger.Warn("Cloudinary not configured, avatar upload disabled")
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	signupUseCase := authUC.NewSignupUseCase(userRepo, profileRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, appLogger)
	uploadAvatarUseCase := profileUC.NewUploadAvatarUseCase(profileRepo, uploader, appLogger)
	createSectionUseCase := sectionUC.NewCreateSectionUseCase(sectionRepo, kafkaClient, appLogger)
	listSectionsUseCase := sectionUC.NewListSectionsUseCase(sectionRepo)
	updateSectionUseCase := sectionUC.NewUpdateSectionUseCase(sectionRepo, kafkaClient, appLogger)
	deleteSectionUseCase := sectionUC.NewDeleteSectionUseCase(sectionRepo, kafkaClient, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(profileRepo, sectionRepo, portfolioCache, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(signupUseCase, loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, uploadAvatarUseCase)
	sectionHandler := httpAdapter.NewSectionHandler(
		createSectionUseCase,
		listSectionsUseCase,
		updateSectionUseCase,
		deleteSectionUseCase,
	)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	profileGroup := router.Group("/profile")
	{
		profileGroup.GET("/get", authMiddleware, profileHandler.GetProfile)
		profileGroup.POST("/update", authMiddleware, profileHandler.UpdateProfile)
		profileGroup.POST("/avatar", authMiddleware, profileHandler.UploadAvatar)

		// public portfolio data, rendering is the client's concern
		profileGroup.GET("/:username", portfolioHandler.GetPortfolio)
	}

	sectionsGroup := router.Group("/sections")
	sectionsGroup.Use(authMiddleware)
	{
		sectionsGroup.POST("/create", sectionHandler.CreateSection)
		sectionsGroup.GET("/list", sectionHandler.ListSections)
		sectionsGroup.PATCH("/update", sectionHandler.UpdateSection)
		sectionsGroup.DELETE("/delete", sectionHandler.DeleteSection)
	}

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
