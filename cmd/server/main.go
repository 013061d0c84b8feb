package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/handler"
	"github.com/rentora/rentora/internal/model"
	"github.com/rentora/rentora/internal/repository"
	"github.com/rentora/rentora/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	logger.Info("Rentora API",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	logger.Info("connected to PostgreSQL database")

	// Initialize completion client
	openaiClient := service.NewOpenAIClient(&cfg.OpenAI, logger)
	if cfg.OpenAI.Enabled {
		logger.Info("completion client initialized",
			zap.String("api_base", cfg.OpenAI.APIBase),
			zap.String("chat_model", cfg.OpenAI.ChatModel),
		)
	} else {
		logger.Warn("OPENAI_API_KEY not set - assistant search will be unavailable")
	}

	// Initialize services
	extractor := service.NewFilterExtractor(openaiClient, cfg.OpenAI.ChatModel, logger)
	searchService := service.NewSearchService(
		extractor,
		repo,
		repo,
		repo,
		cfg.Search.ResultLimit,
		cfg.Search.ChatHistoryLimit,
		logger,
	)
	applicationService := service.NewApplicationService(repo, repo, logger)
	profileService := service.NewProfileService(repo, logger)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService, logger)
	eligibilityHandler := handler.NewEligibilityHandler(searchService, logger)
	propertyHandler := handler.NewPropertyHandler(searchService, logger)
	applicationHandler := handler.NewApplicationHandler(applicationService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "rentora-api",
			"version": Version,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	apiV1.Use(handler.AuthRequired(cfg.Auth.JWTSecret))
	{
		apiV1.POST("/chat/search", handler.RequireRole(model.RoleTenant), searchHandler.Search)
		apiV1.GET("/eligibility", eligibilityHandler.Evaluate)
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)
		apiV1.PUT("/profile", handler.RequireRole(model.RoleTenant), profileHandler.Update)
		apiV1.GET("/applications", handler.RequireRole(model.RoleTenant), applicationHandler.List)
		apiV1.POST("/applications/status", handler.RequireRole(model.RoleLandlord), applicationHandler.UpdateStatus)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}

func newLogger(level string) *zap.Logger {
	if level == "debug" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
