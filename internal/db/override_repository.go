package db

import (
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DayOverrideRepository struct {
	database *gorm.DB
}

func NewDayOverrideRepository(database *gorm.DB) *DayOverrideRepository {
	return &DayOverrideRepository{database: database}
}

func (repo *DayOverrideRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DayOverride, error) {
	overrides := make([]models.DayOverride, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

func (repo *DayOverrideRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DayOverride, bool, error) {
	override := models.DayOverride{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&override)
	if result.Error != nil {
		return models.DayOverride{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayOverride{}, false, nil
	}
	return override, true, nil
}

// Upsert creates or updates the override for (user, date).
func (repo *DayOverrideRepository) Upsert(override *models.DayOverride) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "updated_at"}),
	}).Create(override).Error
}

func (repo *DayOverrideRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.DayOverride{}).Error
}

func (repo *DayOverrideRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.DayOverride{}).Error
}
