package models

import "time"

const (
	SleepTypeMain = "sleep"
	SleepTypeNap  = "nap"
)

type SleepSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	StartAt   time.Time `gorm:"not null" json:"start_at"`
	EndAt     time.Time `gorm:"not null" json:"end_at"`
	Type      string    `gorm:"not null;default:sleep" json:"type"`
	Quality   int       `gorm:"not null;default:3" json:"quality"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (session SleepSession) DurationHours() float64 {
	return session.EndAt.Sub(session.StartAt).Hours()
}

func (session SleepSession) IsMain() bool {
	return session.Type != SleepTypeNap
}
