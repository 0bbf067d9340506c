package models

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

type Session struct {
	ID     string        `json:"id" gorm:"primaryKey;size:36"`
	Status SessionStatus `json:"status" gorm:"size:16;not null"`
}
