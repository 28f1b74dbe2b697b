package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

func loadDoc(category models.SettingsCategory) ([]byte, bool, error) {
	var doc models.SettingsDoc
	err := database.DB.First(&doc, "category = ?", category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Payload, true, nil
}

// saveDoc replaces a whole settings document. The payload must already be
// validated; saves are last-writer-wins per category.
func saveDoc(category models.SettingsCategory, payload interface{}) error {
	bytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	doc := models.SettingsDoc{Category: category, Payload: bytes}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
}

// GetScoringSettings returns the scoring document, falling back to the
// shipped defaults before the first save.
func GetScoringSettings() (models.ScoringSettings, error) {
	payload, found, err := loadDoc(models.SettingsScoring)
	if err != nil {
		return models.ScoringSettings{}, err
	}
	if !found {
		return models.DefaultScoringSettings(), nil
	}
	return models.DecodeScoringSettings(payload)
}

// SaveScoringSettings validates and persists the scoring document. A
// payload violating the weight-sum invariant is rejected before any write.
func SaveScoringSettings(s models.ScoringSettings) error {
	if err := models.ValidateScoringSettings(s); err != nil {
		return err
	}
	return saveDoc(models.SettingsScoring, s)
}

// GetEnhancementSettings returns the enhancement document, falling back to
// the shipped defaults before the first save.
func GetEnhancementSettings() (models.EnhancementSettings, error) {
	payload, found, err := loadDoc(models.SettingsEnhancement)
	if err != nil {
		return models.EnhancementSettings{}, err
	}
	if !found {
		return models.DefaultEnhancementSettings(), nil
	}
	return models.DecodeEnhancementSettings(payload)
}

// SaveEnhancementSettings validates and persists the enhancement document.
// Threshold ordering is re-checked here regardless of UI constraints.
func SaveEnhancementSettings(s models.EnhancementSettings) error {
	if err := models.ValidateEnhancementSettings(s); err != nil {
		return err
	}
	return saveDoc(models.SettingsEnhancement, s)
}
