// Package main is the entry point for the movie service.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/Ernest-Dike/Movie-recommendation-latest/docs"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/config"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/database"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/handlers"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/metrics"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/repository"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/routes"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
	"github.com/Ernest-Dike/Movie-recommendation-latest/pkg/redis"
)

// @title Movie Watchlist API
// @version 1.0
// @description Backend for tracking favorite and watchlist movies
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient := redis.NewClient(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal("Failed to create JWT service:", err)
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient, cfg.BcryptCost, service.LockoutConfig{
		MaxAttempts: cfg.LoginMaxAttempts,
		Window:      cfg.LoginAttemptWindow,
	})
	listService := service.NewListService(listRepo)

	// Initialize handlers
	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		User:   handlers.NewUserHandler(userRepo, listService),
		Movie:  handlers.NewMovieHandler(listService),
		Health: handlers.NewHealthHandler(db, redisClient),
	}

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Set gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Setup(router, cfg, h, authService, m)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting movie service on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Println("Server failed:", err)
		os.Exit(1)
	}
}
