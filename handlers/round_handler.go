package handlers

import (
	"errors"
	"net/http"

	"namepilot/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoundHandler struct {
	roundService *services.RoundService
}

func NewRoundHandler(roundService *services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: roundService}
}

func (h *RoundHandler) ListRounds(c *gin.Context) {
	rounds, err := h.roundService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rounds"})
		return
	}

	c.JSON(http.StatusOK, rounds)
}

func (h *RoundHandler) CreateRound(c *gin.Context) {
	var req services.CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := h.roundService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, round)
}

func (h *RoundHandler) DeleteRound(c *gin.Context) {
	err := h.roundService.Delete(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete round"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// ValidateRound forwards a round to the external validation server. Upstream
// failures map to gateway statuses so they are distinguishable from store
// failures.
func (h *RoundHandler) ValidateRound(c *gin.Context) {
	result, err := h.roundService.Validate(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
	case errors.Is(err, services.ErrRoundGameMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found for this round"})
	case errors.Is(err, services.ErrValidatorTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Validation server timed out"})
	case errors.Is(err, services.ErrValidatorUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Validation server unavailable"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate round"})
	default:
		c.JSON(http.StatusOK, result)
	}
}
