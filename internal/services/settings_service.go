package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// settingsService persists the two global preference records: language
// and extra notes. Writes are last-write-wins.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

func (s *settingsService) getValue(key, fallback string) (string, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return setting.Value, nil
}

func (s *settingsService) setValue(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSettings returns the stored preferences, defaulting language to "en".
func (s *settingsService) GetSettings() (*Settings, error) {
	language, err := s.getValue(models.SettingLanguage, models.LanguageEnglish)
	if err != nil {
		return nil, err
	}
	notes, err := s.getValue(models.SettingExtraNotes, "")
	if err != nil {
		return nil, err
	}
	return &Settings{Language: language, ExtraNotes: notes}, nil
}

// UpdateSettings writes the provided fields; nil fields are untouched.
func (s *settingsService) UpdateSettings(language, extraNotes *string) (*Settings, error) {
	if language != nil {
		if *language != models.LanguageEnglish && *language != models.LanguageIndonesian {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "language must be 'en' or 'id'")
		}
		if err := s.setValue(models.SettingLanguage, *language); err != nil {
			return nil, err
		}
	}
	if extraNotes != nil {
		if err := s.setValue(models.SettingExtraNotes, *extraNotes); err != nil {
			return nil, err
		}
	}
	return s.GetSettings()
}
