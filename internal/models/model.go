package models

import (
	"time"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// Model is one catalog entry. Rows are immutable between catalog refreshes
// except for the Available flag, which tracks credential presence.
type Model struct {
	ID              string      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Provider        string      `gorm:"index;not null" json:"provider"`
	Name            string      `gorm:"not null" json:"name"`
	QualityTier     engine.Tier `gorm:"index;not null;default:'budget'" json:"quality_tier"`
	CostPer1MInput  float64     `gorm:"not null;default:0.0" json:"cost_per_1m_input"`
	CostPer1MOutput float64     `gorm:"not null;default:0.0" json:"cost_per_1m_output"`
	Available       bool        `gorm:"index;not null;default:false" json:"available"`
	Metadata        JSON        `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
}

// ToInfo converts the row into the engine's read-only view.
func (m Model) ToInfo() engine.ModelInfo {
	return engine.ModelInfo{
		ID:              m.ID,
		Provider:        m.Provider,
		Name:            m.Name,
		QualityTier:     m.QualityTier,
		CostPer1MInput:  m.CostPer1MInput,
		CostPer1MOutput: m.CostPer1MOutput,
		Available:       m.Available,
	}
}
