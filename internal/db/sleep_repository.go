package db

import (
	"errors"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
	"gorm.io/gorm"
)

type SleepSessionRepository struct {
	database *gorm.DB
}

func NewSleepSessionRepository(database *gorm.DB) *SleepSessionRepository {
	return &SleepSessionRepository{database: database}
}

func (repo *SleepSessionRepository) ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.SleepSession, error) {
	query := repo.database.Model(&models.SleepSession{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("start_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_at < ?", *to)
	}

	sessions := make([]models.SleepSession, 0)
	if err := query.Order("start_at DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SleepSessionRepository) FindByUserAndID(userID uint, sessionID uint) (models.SleepSession, bool, error) {
	session := models.SleepSession{}
	err := repo.database.Where("user_id = ? AND id = ?", userID, sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SleepSession{}, false, nil
	}
	if err != nil {
		return models.SleepSession{}, false, err
	}
	return session, true, nil
}

func (repo *SleepSessionRepository) Create(session *models.SleepSession) error {
	return repo.database.Create(session).Error
}

func (repo *SleepSessionRepository) DeleteByUserAndID(userID uint, sessionID uint) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, sessionID).Delete(&models.SleepSession{}).Error
}
