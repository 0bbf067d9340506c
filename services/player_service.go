package services

import (
	"namepilot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

type CreatePlayerRequest struct {
	GameID   string `json:"gameID" binding:"required"`
	Username string `json:"username" binding:"required"`
	Score    int    `json:"score"`
	Level    string `json:"level" binding:"required"`
}

func (s *PlayerService) List() ([]models.Player, error) {
	players := make([]models.Player, 0)
	if err := s.db.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *PlayerService) Create(req *CreatePlayerRequest) (*models.Player, error) {
	player := models.Player{
		ID:       uuid.NewString(),
		GameID:   req.GameID,
		Username: req.Username,
		Score:    req.Score,
		Level:    req.Level,
	}

	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

func (s *PlayerService) Delete(playerID string) error {
	var player models.Player
	if err := s.db.First(&player, "id = ?", playerID).Error; err != nil {
		return err
	}

	return s.db.Delete(&player).Error
}
