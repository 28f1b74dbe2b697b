package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsCategory names one independently loadable settings document.
type SettingsCategory string

const (
	SettingsScoring     SettingsCategory = "scoring"
	SettingsEnhancement SettingsCategory = "enhancement"
	SettingsForeman     SettingsCategory = "foreman"
	SettingsSquad       SettingsCategory = "squad"
)

// SettingsDoc is one configuration document. Saves replace the whole
// payload atomically; concurrent saves are last-writer-wins per category.
// The foreman and squad categories are backed by the role_bindings and
// tournament_picks tables instead of a JSON payload.
type SettingsDoc struct {
	Category  SettingsCategory `gorm:"primarykey" json:"category"`
	Payload   datatypes.JSON   `gorm:"not null;default:'{}'" json:"payload"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (SettingsDoc) TableName() string {
	return "settings_docs"
}
