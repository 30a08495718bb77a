package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recommendation_service/config"
	"recommendation_service/internal/delivery"
	"recommendation_service/internal/middleware"
	"recommendation_service/internal/repository"
	"recommendation_service/internal/usecase"
	"recommendation_service/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Recommendation Service...")

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	orderRepo := repository.NewPostgresOrderRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	logger.Info("Repositories initialized.")

	recommendationUseCase := usecase.NewRecommendationUseCase(orderRepo, productRepo, usecase.Params{
		MaxNeighbors:        cfg.Recommender.MaxNeighbors,
		PoolSize:            cfg.Recommender.PoolSize,
		NeighborOrderLimit:  cfg.Recommender.NeighborOrderLimit,
		RecencyMonths:       cfg.Recommender.RecencyMonths,
		SimilarityThreshold: cfg.Recommender.SimilarityThreshold,
	}, logger)
	logger.Info("Use cases initialized.")

	recommendationHandler := delivery.NewRecommendationHandler(recommendationUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Identity(logger))

	recommendationHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server on port %s: %v", cfg.Port, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Infof("Received signal %s, shutting down...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	} else {
		logger.Info("Server stopped gracefully.")
	}
}
