package main

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/api/middleware"
	"github.com/linskybing/formkit/internal/api/routes"
	"github.com/linskybing/formkit/internal/config"
	"github.com/linskybing/formkit/internal/config/db"
	"github.com/linskybing/formkit/pkg/logger"
)

// @title Formkit API
// @version 1.0
// @description Form builder and submission service.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.Migrate(db.DB); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(config.GinMode)
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	logger.Infof("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		logger.Fatalf("Failed to start: %v", err)
	}
}
