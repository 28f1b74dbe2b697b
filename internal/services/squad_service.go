package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

// GetSelection returns the tournament pool model ids in insertion order.
func GetSelection() ([]string, error) {
	var picks []models.TournamentPick
	if err := database.DB.Order("created_at, model_id").Find(&picks).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(picks))
	for _, p := range picks {
		ids = append(ids, p.ModelID)
	}
	return ids, nil
}

// TogglePick adds or removes a model from the tournament pool and reports
// whether it is selected afterwards. Selecting an unavailable model is a
// no-op; an unknown model id is a configuration error.
func TogglePick(modelID string) (bool, error) {
	var model models.Model
	if err := database.DB.First(&model, "id = ?", modelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: unknown model %q", engine.ErrInvalidConfiguration, modelID)
		}
		return false, err
	}

	var pick models.TournamentPick
	err := database.DB.First(&pick, "model_id = ?", modelID).Error
	switch {
	case err == nil:
		if err := database.DB.Delete(&models.TournamentPick{ModelID: modelID}).Error; err != nil {
			return true, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !model.Available {
			return false, nil
		}
		if err := database.DB.Create(&models.TournamentPick{ModelID: modelID}).Error; err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// ReplaceSelection atomically swaps the whole tournament pool. Every model
// must exist and be available.
func ReplaceSelection(modelIDs []string) error {
	snapshot, err := Snapshot()
	if err != nil {
		return err
	}
	for _, id := range modelIDs {
		m, ok := snapshot.ByID(id)
		if !ok {
			return fmt.Errorf("%w: unknown model %q", engine.ErrInvalidConfiguration, id)
		}
		if !m.Available {
			return fmt.Errorf("%w: unavailable model %q", engine.ErrInvalidConfiguration, id)
		}
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TournamentPick{}).Error; err != nil {
			return err
		}
		for _, id := range modelIDs {
			if err := tx.Create(&models.TournamentPick{ModelID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ResetSelection empties the tournament pool.
func ResetSelection() error {
	return database.DB.Where("1 = 1").Delete(&models.TournamentPick{}).Error
}
