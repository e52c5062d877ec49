package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-tracker/config"
	_ "go-interview-tracker/docs" // Important for Swagger
	v1 "go-interview-tracker/internal/delivery/http/v1"
	"go-interview-tracker/internal/delivery/http/middleware"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/repository/postgres"
	"go-interview-tracker/internal/usecase"
	"go-interview-tracker/pkg/database"
	"go-interview-tracker/pkg/logger"
	"go-interview-tracker/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Interview Tracker API
// @version         1.0
// @description     Candidates, interviews and interview feedback for a hiring pipeline.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting interview tracker", "port", cfg.Port)
	for _, w := range cfg.Warnings() {
		logger.Log.Warn(w)
	}
	accessLog := logger.NewAccessLogger(cfg.LogLevel)
	defer accessLog.Sync()

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
		MaxConns:       int32(cfg.DBMaxConns),
		MinConns:       int32(cfg.DBMinConns),
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		logger.Log.Error("Failed to create schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.New(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	if err := domain.RegisterValidators(validate); err != nil {
		logger.Log.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, validate)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, validate)
	healthUC := usecase.NewHealthUsecase()

	// 7. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		CandidateUC:    candidateUC,
		InterviewUC:    interviewUC,
		FeedbackUC:     feedbackUC,
		HealthUC:       healthUC,
		Redis:          redisClient,
		RateLimit:      middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, time.Duration(cfg.RateLimitWindowSeconds)*time.Second),
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      accessLog,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
