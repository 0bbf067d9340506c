package handlers

import (
	"errors"
	"net/http"

	"namepilot/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(&req)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
	default:
		c.JSON(http.StatusCreated, game)
	}
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	err := h.gameService.Delete(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
	default:
		c.Status(http.StatusNoContent)
	}
}
