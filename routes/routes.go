package routes

import (
	"net/http"

	"namepilot/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	sessionHandler *handlers.SessionHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	roundHandler *handlers.RoundHandler,
) {
	// Session routes
	sessions := router.Group("/sessions")
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.DELETE("/:id", sessionHandler.DeleteSession)
		sessions.POST("/:id/end", sessionHandler.EndSession)
	}

	// Game routes
	games := router.Group("/games")
	{
		games.GET("", gameHandler.ListGames)
		games.POST("", gameHandler.CreateGame)
		games.DELETE("/:id", gameHandler.DeleteGame)
	}

	// Player routes
	players := router.Group("/players")
	{
		players.GET("", playerHandler.ListPlayers)
		players.POST("", playerHandler.CreatePlayer)
		players.DELETE("/:id", playerHandler.DeletePlayer)
	}

	// Round routes
	rounds := router.Group("/rounds")
	{
		rounds.GET("", roundHandler.ListRounds)
		rounds.POST("", roundHandler.CreateRound)
		rounds.DELETE("/:id", roundHandler.DeleteRound)
		rounds.POST("/:id/validate", roundHandler.ValidateRound)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
