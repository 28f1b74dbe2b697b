package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// ScoringSettings is the payload of the "scoring" settings document.
type ScoringSettings struct {
	Weights     engine.RubricWeights `json:"weights"`
	Calibration engine.Calibration   `json:"calibration"`
}

// EnhancementSettings is the payload of the "enhancement" settings document.
type EnhancementSettings struct {
	Thresholds     engine.ThresholdSet   `json:"thresholds"`
	Aggressiveness engine.Aggressiveness `json:"aggressiveness" validate:"required,oneof=conservative medium aggressive"`
}

// DefaultScoringSettings returns the document used before the first save.
func DefaultScoringSettings() ScoringSettings {
	return ScoringSettings{Weights: engine.DefaultWeights()}
}

// DefaultEnhancementSettings returns the document used before the first save.
func DefaultEnhancementSettings() EnhancementSettings {
	return EnhancementSettings{
		Thresholds:     engine.DefaultThresholds(),
		Aggressiveness: engine.AggressivenessMedium,
	}
}

// ValidateScoringSettings checks structure and the weight-sum invariant.
// A failing payload must be rejected before persistence.
func ValidateScoringSettings(s ScoringSettings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", engine.ErrInvalidConfiguration, err)
	}
	return s.Weights.Validate()
}

// ValidateEnhancementSettings checks structure and the threshold ordering
// invariant.
func ValidateEnhancementSettings(s EnhancementSettings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", engine.ErrInvalidConfiguration, err)
	}
	return s.Thresholds.Validate()
}

var validate = validator.New()

// DecodeScoringSettings unmarshals and validates a stored payload.
func DecodeScoringSettings(payload []byte) (ScoringSettings, error) {
	var s ScoringSettings
	if err := json.Unmarshal(payload, &s); err != nil {
		return ScoringSettings{}, fmt.Errorf("%w: invalid scoring payload: %v", engine.ErrInvalidConfiguration, err)
	}
	if err := ValidateScoringSettings(s); err != nil {
		return ScoringSettings{}, err
	}
	return s, nil
}

// DecodeEnhancementSettings unmarshals and validates a stored payload.
func DecodeEnhancementSettings(payload []byte) (EnhancementSettings, error) {
	var s EnhancementSettings
	if err := json.Unmarshal(payload, &s); err != nil {
		return EnhancementSettings{}, fmt.Errorf("%w: invalid enhancement payload: %v", engine.ErrInvalidConfiguration, err)
	}
	if err := ValidateEnhancementSettings(s); err != nil {
		return EnhancementSettings{}, err
	}
	return s, nil
}
