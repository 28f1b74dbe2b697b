package scoring

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

type SettingsResponse struct {
	Settings models.ScoringSettings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Weights     engine.RubricWeights `json:"weights" binding:"required"`
	Calibration engine.Calibration   `json:"calibration"`
}

type ScoreRequest struct {
	Scene string `json:"scene" binding:"required"`
}

type ScoreResponse struct {
	Result engine.ScoreResult `json:"result"`
}
