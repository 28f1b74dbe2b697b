package services

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

type CatalogFilter struct {
	Provider  string
	Tier      string
	Available *bool
}

// FindModels retrieves catalog entries with optional filtering.
func FindModels(filter CatalogFilter) ([]models.Model, error) {
	query := database.DB.Model(&models.Model{})

	if filter.Provider != "" {
		query = query.Where("provider = ?", filter.Provider)
	}
	if filter.Tier != "" {
		query = query.Where("quality_tier = ?", filter.Tier)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var list []models.Model
	if err := query.Order("provider, id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Snapshot returns the engine's view of the whole catalog. Taken fresh per
// operation so estimates never see stale availability or pricing.
func Snapshot() (engine.CatalogSnapshot, error) {
	var list []models.Model
	if err := database.DB.Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	snapshot := make(engine.CatalogSnapshot, 0, len(list))
	for _, m := range list {
		snapshot = append(snapshot, m.ToInfo())
	}
	return snapshot, nil
}

// RefreshAvailability recomputes each model's availability from credential
// presence and returns how many rows changed.
func RefreshAvailability(creds map[string]bool) (int, error) {
	var list []models.Model
	if err := database.DB.Find(&list).Error; err != nil {
		return 0, err
	}

	changed := 0
	for _, m := range list {
		want := creds[m.Provider]
		if want == m.Available {
			continue
		}
		if err := database.DB.Model(&models.Model{}).
			Where("id = ?", m.ID).
			Update("available", want).Error; err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// defaultCatalog is the shipped model registry. Pricing is per million
// tokens; local models are free.
var defaultCatalog = []models.Model{
	{ID: "ollama/llama3.1:8b", Provider: "ollama", Name: "Llama 3.1 8B", QualityTier: engine.TierBudget},
	{ID: "ollama/qwen2.5:14b", Provider: "ollama", Name: "Qwen 2.5 14B", QualityTier: engine.TierBalanced},
	{ID: "anthropic/claude-haiku", Provider: "anthropic", Name: "Claude Haiku", QualityTier: engine.TierBudget, CostPer1MInput: 0.8, CostPer1MOutput: 4},
	{ID: "anthropic/claude-sonnet", Provider: "anthropic", Name: "Claude Sonnet", QualityTier: engine.TierBalanced, CostPer1MInput: 3, CostPer1MOutput: 15},
	{ID: "anthropic/claude-opus", Provider: "anthropic", Name: "Claude Opus", QualityTier: engine.TierPremium, CostPer1MInput: 15, CostPer1MOutput: 75},
	{ID: "openai/gpt-4o-mini", Provider: "openai", Name: "GPT-4o mini", QualityTier: engine.TierBudget, CostPer1MInput: 0.15, CostPer1MOutput: 0.6},
	{ID: "openai/gpt-4o", Provider: "openai", Name: "GPT-4o", QualityTier: engine.TierPremium, CostPer1MInput: 2.5, CostPer1MOutput: 10},
	{ID: "deepseek/deepseek-chat", Provider: "deepseek", Name: "DeepSeek Chat", QualityTier: engine.TierBalanced, CostPer1MInput: 0.27, CostPer1MOutput: 1.1},
}

// SeedCatalog inserts the default registry on first boot, with availability
// derived from the configured credentials.
func SeedCatalog(creds map[string]bool) error {
	var count int64
	if err := database.DB.Model(&models.Model{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := make([]models.Model, len(defaultCatalog))
	copy(seed, defaultCatalog)
	for i := range seed {
		seed[i].Available = creds[seed[i].Provider]
		seed[i].Metadata = models.JSON{}
	}
	return database.DB.Create(&seed).Error
}
