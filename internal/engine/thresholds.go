package engine

import "fmt"

// Level is the enhancement routing outcome for a scored scene.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelSurgical  Level = "surgical"
	LevelSixPass   Level = "six_pass"
	LevelRewrite   Level = "rewrite"
	LevelCritical  Level = "critical"
)

// Aggressiveness scales how much the chosen enhancement level may alter
// the text. It is a downstream knob for the enhancement executor and never
// changes which level Route selects.
type Aggressiveness string

const (
	AggressivenessConservative Aggressiveness = "conservative"
	AggressivenessMedium       Aggressiveness = "medium"
	AggressivenessAggressive   Aggressiveness = "aggressive"
)

// Valid returns true if the aggressiveness is a known value.
func (a Aggressiveness) Valid() bool {
	switch a {
	case AggressivenessConservative, AggressivenessMedium, AggressivenessAggressive:
		return true
	default:
		return false
	}
}

// ThresholdSet holds the four cut points partitioning the 0..100 score axis
// into five contiguous enhancement zones. Invariant:
// Auto >= ActionPrompt >= SixPass >= Rewrite.
type ThresholdSet struct {
	Auto         int `json:"auto" validate:"min=0,max=100"`
	ActionPrompt int `json:"action_prompt" validate:"min=0,max=100"`
	SixPass      int `json:"six_pass" validate:"min=0,max=100"`
	Rewrite      int `json:"rewrite" validate:"min=0,max=100"`
}

// DefaultThresholds returns the shipped cut points.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{Auto: 85, ActionPrompt: 85, SixPass: 70, Rewrite: 60}
}

// Validate rejects cut points outside 0..100 or out of order. The UI
// constrains its sliders to preserve ordering, but the engine re-checks
// because it can be driven from other callers.
func (t ThresholdSet) Validate() error {
	for _, v := range []int{t.Auto, t.ActionPrompt, t.SixPass, t.Rewrite} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: threshold %d outside 0..100", ErrInvalidConfiguration, v)
		}
	}
	if !(t.Auto >= t.ActionPrompt && t.ActionPrompt >= t.SixPass && t.SixPass >= t.Rewrite) {
		return fmt.Errorf(
			"%w: thresholds must satisfy auto >= action_prompt >= six_pass >= rewrite, got %d/%d/%d/%d",
			ErrInvalidConfiguration, t.Auto, t.ActionPrompt, t.SixPass, t.Rewrite)
	}
	return nil
}

// Route maps a score to its enhancement level. Total over 0..100: every
// integer score lands in exactly one of the five zones (coinciding cut
// points make the zone between them empty). Invalid thresholds fail with
// ErrInvalidConfiguration rather than producing an inconsistent mapping.
func Route(score int, t ThresholdSet) (Level, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if score < 0 || score > 100 {
		return "", fmt.Errorf("%w: score %d outside 0..100", ErrInvalidConfiguration, score)
	}
	switch {
	case score >= t.Auto:
		return LevelExcellent, nil
	case score >= t.ActionPrompt:
		return LevelSurgical, nil
	case score >= t.SixPass:
		return LevelSixPass, nil
	case score >= t.Rewrite:
		return LevelRewrite, nil
	default:
		return LevelCritical, nil
	}
}
