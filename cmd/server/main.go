package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/rezwan-dev/feedstack/backend/internal/router"
	"github.com/rezwan-dev/feedstack/backend/pkg/config"
	"github.com/rezwan-dev/feedstack/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
