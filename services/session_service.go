package services

import (
	"errors"

	"namepilot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionEnded is returned when an operation targets a session that has
// already reached its terminal state.
var ErrSessionEnded = errors.New("session already ended")

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) Create() (*models.Session, error) {
	session := models.Session{
		ID:     uuid.NewString(),
		Status: models.SessionActive,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// End flips a session from active to ended. Sessions never leave the ended
// state, so a second end is rejected with ErrSessionEnded.
func (s *SessionService) End(sessionID string) error {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return err
	}

	if session.Status == models.SessionEnded {
		return ErrSessionEnded
	}

	session.Status = models.SessionEnded
	return s.db.Save(&session).Error
}

func (s *SessionService) Delete(sessionID string) error {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return err
	}

	return s.db.Delete(&session).Error
}
