package engine

import (
	"fmt"
	"math"
)

// Category identifies one rubric category.
type Category string

const (
	CategoryVoiceAuthenticity     Category = "voice_authenticity"
	CategoryCharacterConsistency  Category = "character_consistency"
	CategoryMetaphorDiscipline    Category = "metaphor_discipline"
	CategoryAntiPatternCompliance Category = "anti_pattern_compliance"
	CategoryPhaseAppropriateness  Category = "phase_appropriateness"
)

// Categories lists the rubric categories in display order.
var Categories = []Category{
	CategoryVoiceAuthenticity,
	CategoryCharacterConsistency,
	CategoryMetaphorDiscipline,
	CategoryAntiPatternCompliance,
	CategoryPhaseAppropriateness,
}

// RubricWeights holds the per-category weights. The weights must sum to
// exactly 100.
type RubricWeights struct {
	VoiceAuthenticity     int `json:"voice_authenticity" validate:"min=0,max=100"`
	CharacterConsistency  int `json:"character_consistency" validate:"min=0,max=100"`
	MetaphorDiscipline    int `json:"metaphor_discipline" validate:"min=0,max=100"`
	AntiPatternCompliance int `json:"anti_pattern_compliance" validate:"min=0,max=100"`
	PhaseAppropriateness  int `json:"phase_appropriateness" validate:"min=0,max=100"`
}

// DefaultWeights returns the shipped rubric weighting.
func DefaultWeights() RubricWeights {
	return RubricWeights{
		VoiceAuthenticity:     30,
		CharacterConsistency:  20,
		MetaphorDiscipline:    20,
		AntiPatternCompliance: 15,
		PhaseAppropriateness:  15,
	}
}

// Sum returns the weight total.
func (w RubricWeights) Sum() int {
	return w.VoiceAuthenticity + w.CharacterConsistency + w.MetaphorDiscipline +
		w.AntiPatternCompliance + w.PhaseAppropriateness
}

// Validate rejects weights outside 0..100 or a set that does not sum to
// exactly 100. Both checks run here because the engine can be driven from
// callers other than the validated HTTP path.
func (w RubricWeights) Validate() error {
	for _, v := range []int{
		w.VoiceAuthenticity, w.CharacterConsistency, w.MetaphorDiscipline,
		w.AntiPatternCompliance, w.PhaseAppropriateness,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: weight %d outside 0..100", ErrInvalidConfiguration, v)
		}
	}
	if s := w.Sum(); s != 100 {
		return fmt.Errorf("%w: weights sum to %d, must equal 100", ErrInvalidConfiguration, s)
	}
	return nil
}

func (w RubricWeights) byCategory() map[Category]int {
	return map[Category]int{
		CategoryVoiceAuthenticity:     w.VoiceAuthenticity,
		CategoryCharacterConsistency:  w.CharacterConsistency,
		CategoryMetaphorDiscipline:    w.MetaphorDiscipline,
		CategoryAntiPatternCompliance: w.AntiPatternCompliance,
		CategoryPhaseAppropriateness:  w.PhaseAppropriateness,
	}
}

// ScoreResult is the outcome of scoring one scene.
type ScoreResult struct {
	Total       int              `json:"total"`
	PerCategory map[Category]int `json:"per_category"`
}

// Score evaluates a scene against the rubric. Each category is evaluated
// independently; a category whose calibration data is missing scores 0
// rather than aborting, so partial reference material yields a
// conservatively low score instead of blocking the pipeline. The total is
// the weight-normalized sum rounded half-up. Pure function of its inputs.
func Score(scene string, weights RubricWeights, cal Calibration) (ScoreResult, error) {
	if err := weights.Validate(); err != nil {
		return ScoreResult{}, err
	}

	per := map[Category]int{
		CategoryVoiceAuthenticity:     evaluateVoice(scene, cal),
		CategoryCharacterConsistency:  evaluateCharacter(scene, cal),
		CategoryMetaphorDiscipline:    evaluateMetaphor(scene),
		CategoryAntiPatternCompliance: evaluateAntiPattern(scene, cal),
		CategoryPhaseAppropriateness:  evaluatePhase(scene, cal),
	}

	return ScoreResult{Total: WeightedTotal(weights, per), PerCategory: per}, nil
}

// WeightedTotal combines per-category scores under the given weights:
// total = Σ (weight_i / 100 × score_i), rounded half-up.
func WeightedTotal(weights RubricWeights, per map[Category]int) int {
	var sum float64
	for cat, weight := range weights.byCategory() {
		sum += float64(weight) / 100 * float64(per[cat])
	}
	return int(math.Floor(sum + 0.5))
}
