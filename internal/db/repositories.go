package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	RotaWindows *RotaWindowRepository
	Overrides   *DayOverrideRepository
	SleepLogs   *SleepSessionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		RotaWindows: NewRotaWindowRepository(database),
		Overrides:   NewDayOverrideRepository(database),
		SleepLogs:   NewSleepSessionRepository(database),
	}
}
