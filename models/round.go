package models

import "time"

type Round struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	GameID    string    `json:"gameID" gorm:"size:36;not null;index"`
	PlayerID  *string   `json:"playerID,omitempty" gorm:"size:36;index"`
	Letter    string    `json:"letter" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Animal    string    `json:"animal" gorm:"not null"`
	Place     string    `json:"place" gorm:"not null"`
	Object    string    `json:"object" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
