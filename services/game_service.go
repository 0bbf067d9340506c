package services

import (
	"errors"
	"fmt"

	"namepilot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound is returned when a game references a session id that
// does not exist. games.session_id carries no foreign key, so the check
// happens here before the insert.
var ErrSessionNotFound = errors.New("session not found")

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type CreateGameRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
	Timer      int    `json:"timer" binding:"required"`
	SessionID  string `json:"sessionID" binding:"required"`
}

func (s *GameService) List() ([]models.Game, error) {
	games := make([]models.Game, 0)
	if err := s.db.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) Create(req *CreateGameRequest) (*models.Game, error) {
	var count int64
	if err := s.db.Model(&models.Session{}).Where("id = ?", req.SessionID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
	}

	game := models.Game{
		ID:         uuid.NewString(),
		Difficulty: req.Difficulty,
		Timer:      req.Timer,
		SessionID:  req.SessionID,
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

func (s *GameService) Delete(gameID string) error {
	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return err
	}

	return s.db.Delete(&game).Error
}
