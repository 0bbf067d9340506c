package models

import "time"

type Player struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	GameID    string    `json:"gameID" gorm:"size:36;not null;index"`
	Username  string    `json:"username" gorm:"not null"`
	Score     int       `json:"score" gorm:"not null;default:0"`
	Level     string    `json:"level" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Rounds []Round `json:"rounds,omitempty" gorm:"foreignKey:PlayerID"`
}
