package main

import (
	"log"

	"namepilot/config"
	"namepilot/handlers"
	"namepilot/middleware"
	"namepilot/models"
	"namepilot/routes"
	"namepilot/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.ValidationURL == "" {
		log.Fatal("VALIDATION_URL must be set")
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Session{},
		&models.Game{},
		&models.Player{},
		&models.Round{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	validator := services.NewValidationClient(cfg.ValidationURL, cfg.ValidationTimeout)
	sessionService := services.NewSessionService(db)
	gameService := services.NewGameService(db)
	playerService := services.NewPlayerService(db)
	roundService := services.NewRoundService(db, validator)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	gameHandler := handlers.NewGameHandler(gameService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	roundHandler := handlers.NewRoundHandler(roundService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, sessionHandler, gameHandler, playerHandler, roundHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
