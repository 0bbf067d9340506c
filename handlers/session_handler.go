package handlers

import (
	"errors"
	"net/http"

	"namepilot/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) EndSession(c *gin.Context) {
	err := h.sessionService.End(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, services.ErrSessionEnded):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already ended"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
	default:
		c.Status(http.StatusOK)
	}
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	err := h.sessionService.Delete(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
	default:
		c.Status(http.StatusNoContent)
	}
}
