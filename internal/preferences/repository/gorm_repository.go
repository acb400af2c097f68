package repository

import (
	"studyplan-backend/internal/preferences/domain"

	"gorm.io/gorm"
)

// gormPreferencesRepository implements PreferencesRepository using GORM.
// The singleton is whichever row exists; one is created on first access.
type gormPreferencesRepository struct {
	db *gorm.DB
}

// NewGormPreferencesRepository creates a new GORM-based PreferencesRepository
func NewGormPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &gormPreferencesRepository{db: db}
}

func (r *gormPreferencesRepository) Get() (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	err := r.db.First(&prefs).Error
	if err == nil {
		return &prefs, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	created := defaultPreferences()
	if err := r.db.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *gormPreferencesRepository) Update(apply func(*domain.UserPreferences)) (*domain.UserPreferences, error) {
	var updated *domain.UserPreferences
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var prefs domain.UserPreferences
		err := tx.First(&prefs).Error
		if err == gorm.ErrRecordNotFound {
			prefs = *defaultPreferences()
			err = tx.Create(&prefs).Error
		}
		if err != nil {
			return err
		}

		id := prefs.ID
		apply(&prefs)
		prefs.ID = id

		if err := tx.Save(&prefs).Error; err != nil {
			return err
		}
		updated = &prefs
		return nil
	})
	return updated, err
}
