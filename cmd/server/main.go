package main

import (
	"log"
	"os"

	"franchise-backend/internal/api/routes"
	"franchise-backend/internal/config"
	"franchise-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "franchise-backend/docs" // This is needed for swag
)

//	@title			Franchise Backend API
//	@version		1.0
//	@description	Manages franchises, their branches and the products stocked in each branch, and reports the best stocked product per branch.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	db, err := openDatabase(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":   port,
		"driver": cfg.DatabaseDriver,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
