package services

import (
	"errors"
	"fmt"

	"namepilot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRoundGameMissing is returned by Validate when a round's parent game no
// longer exists. Kept distinct from a round lookup miss so callers can tell
// the two apart.
var ErrRoundGameMissing = errors.New("game not found for this round")

type RoundService struct {
	db        *gorm.DB
	validator *ValidationClient
}

func NewRoundService(db *gorm.DB, validator *ValidationClient) *RoundService {
	return &RoundService{db: db, validator: validator}
}

type CreateRoundRequest struct {
	GameID   string  `json:"gameID" binding:"required"`
	PlayerID *string `json:"playerID"`
	Letter   string  `json:"letter" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Animal   string  `json:"animal" binding:"required"`
	Place    string  `json:"place" binding:"required"`
	Object   string  `json:"object" binding:"required"`
}

func (s *RoundService) List() ([]models.Round, error) {
	rounds := make([]models.Round, 0)
	if err := s.db.Find(&rounds).Error; err != nil {
		return nil, err
	}
	return rounds, nil
}

func (s *RoundService) Create(req *CreateRoundRequest) (*models.Round, error) {
	round := models.Round{
		ID:       uuid.NewString(),
		GameID:   req.GameID,
		PlayerID: req.PlayerID,
		Letter:   req.Letter,
		Name:     req.Name,
		Animal:   req.Animal,
		Place:    req.Place,
		Object:   req.Object,
	}

	if err := s.db.Create(&round).Error; err != nil {
		return nil, err
	}

	return &round, nil
}

func (s *RoundService) Delete(roundID string) error {
	var round models.Round
	if err := s.db.First(&round, "id = ?", roundID).Error; err != nil {
		return err
	}

	return s.db.Delete(&round).Error
}

// Validate resolves the round and its parent game, forwards the answers to
// the external validation server, and relays the verdicts unmodified.
func (s *RoundService) Validate(roundID string) (*ValidationResult, error) {
	var round models.Round
	if err := s.db.First(&round, "id = ?", roundID).Error; err != nil {
		return nil, err
	}

	// The session id lives on the game, so the parent has to be resolved
	// even though the validator never sees the game itself.
	var game models.Game
	if err := s.db.First(&game, "id = ?", round.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: round %s", ErrRoundGameMissing, round.ID)
		}
		return nil, err
	}

	return s.validator.Validate(&ValidationRequest{
		Letter:    round.Letter,
		Name:      round.Name,
		Animal:    round.Animal,
		Place:     round.Place,
		Object:    round.Object,
		SessionID: game.SessionID,
	})
}
