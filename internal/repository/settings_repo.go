package repository

import (
	"errors"

	"github.com/dj1alilou/windyluxury/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the settings document, or an empty document when none
	// has been written yet.
	Get() (*model.Settings, error)
	// Save writes the whole document back. Read-modify-write: concurrent
	// saves of different fields can lose updates (documented limitation).
	Save(settings *model.Settings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

func (r *settingsRepo) Get() (*model.Settings, error) {
	var settings model.Settings
	err := r.db.First(&settings, "id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Settings{ID: model.SettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Save(settings *model.Settings) error {
	settings.ID = model.SettingsID
	return r.db.Save(settings).Error
}
