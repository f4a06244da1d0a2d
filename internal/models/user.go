package models

import "time"

const DefaultTargetSleepHours = 7.5

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"`
	TargetSleepHours float64   `gorm:"not null;default:7.5" json:"target_sleep_hours"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

// SleepTarget returns the user's nightly sleep target, falling back to the
// default when the stored value is unusable.
func (user User) SleepTarget() float64 {
	if user.TargetSleepHours <= 0 {
		return DefaultTargetSleepHours
	}
	return user.TargetSleepHours
}
