package models

import (
	"strings"
	"time"
)

// RotaWindow is the single active rota per user: a pattern anchored to the
// calendar. StartDate is inclusive, EndDate exclusive (nil = unbounded).
// Cycle stores the actual label sequence so painted rotas survive even when
// PatternID names no catalog entry.
type RotaWindow struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	PatternID   string     `gorm:"not null" json:"pattern_id"`
	Cycle       string     `gorm:"not null" json:"cycle"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	AnchorIndex int        `gorm:"not null;default:0" json:"anchor_index"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CycleLabels splits the stored comma-joined cycle.
func (window RotaWindow) CycleLabels() []string {
	if strings.TrimSpace(window.Cycle) == "" {
		return nil
	}
	return strings.Split(window.Cycle, ",")
}

// JoinCycle renders a label sequence into the stored column format.
func JoinCycle(labels []string) string {
	return strings.Join(labels, ",")
}

// DayOverride is a manual per-date exception that wins over the projected
// cycle value. Sticky until the rota is cleared.
type DayOverride struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_override_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_override_user_date" json:"date"`
	Label     string    `gorm:"not null" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
