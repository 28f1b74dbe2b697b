package services

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// ScoreScene scores a scene against the persisted rubric configuration.
// The stored weights are validated on load, so a corrupted document fails
// with ErrInvalidConfiguration instead of producing a bogus score.
func ScoreScene(scene string) (engine.ScoreResult, error) {
	settings, err := GetScoringSettings()
	if err != nil {
		return engine.ScoreResult{}, err
	}
	return engine.Score(scene, settings.Weights, settings.Calibration)
}

// RouteScore maps a score to its enhancement level under the persisted
// thresholds, and returns the configured aggressiveness for the
// enhancement executor alongside it.
func RouteScore(score int) (engine.Level, engine.Aggressiveness, error) {
	settings, err := GetEnhancementSettings()
	if err != nil {
		return "", "", err
	}
	level, err := engine.Route(score, settings.Thresholds)
	if err != nil {
		return "", "", err
	}
	return level, settings.Aggressiveness, nil
}
