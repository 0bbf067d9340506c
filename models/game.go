package models

import "time"

type Game struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Difficulty string    `json:"difficulty" gorm:"not null"`
	Timer      int       `json:"timer" gorm:"not null"` // seconds
	SessionID  string    `json:"sessionID" gorm:"size:36;not null"`
	CreatedAt  time.Time `json:"createdAt"`

	// Relationships
	Players []Player `json:"players,omitempty" gorm:"foreignKey:GameID"`
	Rounds  []Round  `json:"rounds,omitempty" gorm:"foreignKey:GameID"`
}
