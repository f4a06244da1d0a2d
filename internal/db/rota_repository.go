package db

import (
	"errors"

	"github.com/shiftcoach/shiftcoach/internal/models"
	"gorm.io/gorm"
)

type RotaWindowRepository struct {
	database *gorm.DB
}

func NewRotaWindowRepository(database *gorm.DB) *RotaWindowRepository {
	return &RotaWindowRepository{database: database}
}

// FindByUser returns the user's active window. The second return reports
// whether one exists; a user with no rota is a normal state, not an error.
func (repo *RotaWindowRepository) FindByUser(userID uint) (models.RotaWindow, bool, error) {
	window := models.RotaWindow{}
	err := repo.database.Where("user_id = ?", userID).First(&window).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RotaWindow{}, false, nil
	}
	if err != nil {
		return models.RotaWindow{}, false, err
	}
	return window, true, nil
}

// Replace installs the window as the user's only active rota, overwriting any
// previous one in a single transaction.
func (repo *RotaWindowRepository) Replace(window *models.RotaWindow) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", window.UserID).Delete(&models.RotaWindow{}).Error; err != nil {
			return err
		}
		return tx.Create(window).Error
	})
}

func (repo *RotaWindowRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.RotaWindow{}).Error
}
