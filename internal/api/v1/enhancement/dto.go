package enhancement

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

type SettingsResponse struct {
	Settings models.EnhancementSettings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Thresholds     engine.ThresholdSet `json:"thresholds" binding:"required"`
	Aggressiveness string              `json:"aggressiveness" binding:"required,oneof=conservative medium aggressive"`
}

type RouteRequest struct {
	Score *int `json:"score" binding:"required,min=0,max=100"`
}

type RouteResponse struct {
	Score          int                   `json:"score"`
	Level          engine.Level          `json:"level"`
	Aggressiveness engine.Aggressiveness `json:"aggressiveness"`
}
