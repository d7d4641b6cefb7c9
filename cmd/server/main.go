package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bedtime-server/internal/config"
	"bedtime-server/internal/database"
	"bedtime-server/internal/handler"
	"bedtime-server/internal/logger"
	"bedtime-server/internal/middleware"
	"bedtime-server/internal/provider"
	"bedtime-server/internal/repository"
	"bedtime-server/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	// .env опционален: в контейнере конфигурация приходит из окружения
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogFormat,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))
	zap.L().Info("Configuration loaded",
		zap.String("storage", cfg.Storage),
		zap.String("aiProvider", cfg.AIProvider))

	// --- Storage Setup ---
	var (
		storyRepo      repository.StoryRepository
		preferenceRepo repository.PreferencesRepository
		characterRepo  repository.CharacterSuggestionRepository
	)

	switch cfg.Storage {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pgPool, err := database.NewPool(ctx, cfg)
		cancel()
		if err != nil {
			zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer pgPool.Close()
		zap.L().Info("Connected to PostgreSQL", zap.String("dsn", cfg.MaskedDSN()))

		if err := database.ApplyMigrations(pgPool); err != nil {
			zap.L().Fatal("Failed to apply migrations", zap.Error(err))
		}
		zap.L().Info("Migrations applied")

		storyRepo = repository.NewPgStoryRepository(pgPool, log)
		preferenceRepo = repository.NewPgPreferencesRepository(pgPool, log)
		characterRepo = repository.NewPgCharacterRepository(pgPool, log)
	case "memory":
		zap.L().Warn("Using in-memory storage, data will not survive restarts")
		storyRepo = repository.NewMemoryStoryRepository()
		preferenceRepo = repository.NewMemoryPreferencesRepository()
		characterRepo = repository.NewMemoryCharacterRepository()
	default:
		zap.L().Fatal("Unknown storage type", zap.String("storage", cfg.Storage))
	}

	// --- AI Provider ---
	aiClient, err := provider.NewAIClient(cfg, log)
	if err != nil {
		zap.L().Fatal("Failed to create AI client", zap.Error(err))
	}

	// --- Dependency Injection ---
	storySvc := service.NewStoryService(storyRepo, preferenceRepo, characterRepo, aiClient, log)
	apiHandler := handler.NewHandler(storySvc, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	// Configure CORS Middleware
	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health Check Endpoint
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Register Application Routes
	apiHandler.RegisterRoutes(router)

	// Prometheus Middleware после регистрации роутов
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	// --- Start HTTP Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // генерация истории может занимать до AI_TIMEOUT
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.HTTPPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exited")
}
