package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights RubricWeights
		wantErr bool
	}{
		{
			name:    "defaults sum to 100",
			weights: DefaultWeights(),
			wantErr: false,
		},
		{
			name:    "sum of 94 rejected",
			weights: RubricWeights{VoiceAuthenticity: 30, CharacterConsistency: 20, MetaphorDiscipline: 20, AntiPatternCompliance: 15, PhaseAppropriateness: 9},
			wantErr: true,
		},
		{
			name:    "sum of 105 rejected",
			weights: RubricWeights{VoiceAuthenticity: 35, CharacterConsistency: 20, MetaphorDiscipline: 20, AntiPatternCompliance: 15, PhaseAppropriateness: 15},
			wantErr: true,
		},
		{
			name:    "single category carrying all weight",
			weights: RubricWeights{VoiceAuthenticity: 100},
			wantErr: false,
		},
		{
			name:    "all zero rejected",
			weights: RubricWeights{},
			wantErr: true,
		},
		{
			name:    "out-of-range weights rejected even when summing to 100",
			weights: RubricWeights{VoiceAuthenticity: 200, CharacterConsistency: -100},
			wantErr: true,
		},
		{
			name:    "weight above 100 rejected",
			weights: RubricWeights{VoiceAuthenticity: 101, CharacterConsistency: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoreRejectsInvalidWeights(t *testing.T) {
	bad := RubricWeights{VoiceAuthenticity: 50, CharacterConsistency: 44}
	_, err := Score("Some scene text.", bad, Calibration{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "weights sum to 94")
}

func TestScoreRejectsOutOfRangeWeights(t *testing.T) {
	// Without the range check a 200/-100 split sums to 100 and would let
	// the total escape 0..100.
	bad := RubricWeights{VoiceAuthenticity: 200, CharacterConsistency: -100}
	_, err := Score("Some scene text.", bad, Calibration{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "outside 0..100")
}

func TestWeightedTotal(t *testing.T) {
	per := map[Category]int{
		CategoryVoiceAuthenticity:     80,
		CategoryCharacterConsistency:  90,
		CategoryMetaphorDiscipline:    70,
		CategoryAntiPatternCompliance: 95,
		CategoryPhaseAppropriateness:  85,
	}
	// 0.30*80 + 0.20*90 + 0.20*70 + 0.15*95 + 0.15*85 = 83.0
	total := WeightedTotal(DefaultWeights(), per)
	assert.Equal(t, 83, total)
}

func TestWeightedTotalRoundsHalfUp(t *testing.T) {
	weights := RubricWeights{VoiceAuthenticity: 50, CharacterConsistency: 50}
	per := map[Category]int{
		CategoryVoiceAuthenticity:    80,
		CategoryCharacterConsistency: 85,
	}
	// 40 + 42.5 = 82.5 -> 83
	assert.Equal(t, 83, WeightedTotal(weights, per))
}

func TestWeightedTotalStaysInRange(t *testing.T) {
	weights := DefaultWeights()
	for _, scores := range []int{0, 1, 50, 99, 100} {
		per := map[Category]int{}
		for _, cat := range Categories {
			per[cat] = scores
		}
		total := WeightedTotal(weights, per)
		assert.GreaterOrEqual(t, total, 0)
		assert.LessOrEqual(t, total, 100)
		assert.Equal(t, scores, total)
	}
}

func TestScoreMissingCalibrationIsConservative(t *testing.T) {
	// No calibration at all: voice, character, anti-pattern and phase
	// evaluators cannot run and contribute 0 instead of aborting.
	result, err := Score("The rain fell on the harbor.", DefaultWeights(), Calibration{})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.PerCategory[CategoryVoiceAuthenticity])
	assert.Equal(t, 0, result.PerCategory[CategoryCharacterConsistency])
	assert.Equal(t, 0, result.PerCategory[CategoryAntiPatternCompliance])
	assert.Equal(t, 0, result.PerCategory[CategoryPhaseAppropriateness])
	// Metaphor discipline needs no reference data.
	assert.Equal(t, 100, result.PerCategory[CategoryMetaphorDiscipline])
	assert.GreaterOrEqual(t, result.Total, 0)
	assert.LessOrEqual(t, result.Total, 100)
}

func TestScoreWithFullCalibration(t *testing.T) {
	cal := Calibration{
		ReferenceProse:  []string{"The rain fell on the harbor and the boats swayed in the grey light."},
		BannedPhrases:   []string{"suddenly"},
		CharacterTraits: map[string][]string{"Mara": {"limp", "scarred"}},
		Phase:           "quiet",
		PhaseProfiles:   map[string]PacingProfile{"quiet": {MinAvgSentenceLen: 4, MaxAvgSentenceLen: 20}},
	}
	scene := "Mara watched the rain fall on the harbor. Her limp slowed her on the wet boards. The boats swayed."

	result, err := Score(scene, DefaultWeights(), cal)
	assert.NoError(t, err)
	assert.Greater(t, result.PerCategory[CategoryVoiceAuthenticity], 0)
	assert.Equal(t, 100, result.PerCategory[CategoryCharacterConsistency])
	assert.Equal(t, 100, result.PerCategory[CategoryAntiPatternCompliance])
	assert.Equal(t, 100, result.PerCategory[CategoryPhaseAppropriateness])
	assert.Greater(t, result.Total, 50)
	assert.LessOrEqual(t, result.Total, 100)
}
