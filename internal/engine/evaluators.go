package engine

import (
	"strings"
	"unicode"
)

// Calibration holds the reference material the category evaluators compare
// a scene against. Any empty section disables its evaluator (which then
// scores 0, see Score).
type Calibration struct {
	// ReferenceProse is calibrated sample prose in the author's voice.
	ReferenceProse []string `json:"reference_prose"`
	// BannedPhrases are anti-pattern phrases that must not appear.
	BannedPhrases []string `json:"banned_phrases"`
	// CharacterTraits maps a character name to trait words that should
	// accompany the character on the page.
	CharacterTraits map[string][]string `json:"character_traits"`
	// Phase names the narrative phase the scene belongs to.
	Phase string `json:"phase"`
	// PhaseProfiles maps a phase to its expected pacing band.
	PhaseProfiles map[string]PacingProfile `json:"phase_profiles"`
}

// PacingProfile bounds the average sentence length expected in a phase.
type PacingProfile struct {
	MinAvgSentenceLen float64 `json:"min_avg_sentence_len" validate:"min=0"`
	MaxAvgSentenceLen float64 `json:"max_avg_sentence_len" validate:"min=0"`
}

// figurativeMarkers are the lexical cues counted by the metaphor evaluator.
var figurativeMarkers = []string{
	"like a", "like the", "as if", "as though", "resembled", "seemed to",
}

// evaluateVoice measures vocabulary overlap between the scene and the
// calibrated reference prose: the share of the scene's distinct words that
// also occur in the reference vocabulary, scaled to 0..100.
func evaluateVoice(scene string, cal Calibration) int {
	if len(cal.ReferenceProse) == 0 {
		return 0
	}
	ref := make(map[string]struct{})
	for _, sample := range cal.ReferenceProse {
		for _, w := range tokenize(sample) {
			ref[w] = struct{}{}
		}
	}
	sceneWords := make(map[string]struct{})
	for _, w := range tokenize(scene) {
		sceneWords[w] = struct{}{}
	}
	if len(sceneWords) == 0 {
		return 0
	}
	hits := 0
	for w := range sceneWords {
		if _, ok := ref[w]; ok {
			hits++
		}
	}
	return clampScore(hits * 100 / len(sceneWords))
}

// evaluateCharacter checks that every character mentioned in the scene is
// grounded by at least one of its calibrated trait words. A mention with no
// trait echo scores 40 for that character; characters absent from the scene
// are ignored; no mentions at all means nothing to contradict.
func evaluateCharacter(scene string, cal Calibration) int {
	if len(cal.CharacterTraits) == 0 {
		return 0
	}
	lower := strings.ToLower(scene)
	total, count := 0, 0
	for name, traits := range cal.CharacterTraits {
		if !strings.Contains(lower, strings.ToLower(name)) {
			continue
		}
		count++
		grounded := false
		for _, trait := range traits {
			if strings.Contains(lower, strings.ToLower(trait)) {
				grounded = true
				break
			}
		}
		if grounded {
			total += 100
		} else {
			total += 40
		}
	}
	if count == 0 {
		return 100
	}
	return clampScore(total / count)
}

// evaluateMetaphor scores figurative-marker density. Up to one marker per
// hundred words is full discipline; the score falls linearly to 0 at five
// per hundred. Runs without calibration data.
func evaluateMetaphor(scene string) int {
	words := tokenize(scene)
	if len(words) == 0 {
		return 0
	}
	lower := strings.ToLower(scene)
	markers := 0
	for _, m := range figurativeMarkers {
		markers += strings.Count(lower, m)
	}
	density := float64(markers) * 100 / float64(len(words))
	switch {
	case density <= 1:
		return 100
	case density >= 5:
		return 0
	default:
		return clampScore(int(100 - (density-1)*25))
	}
}

// evaluateAntiPattern deducts 15 points per banned-phrase occurrence.
func evaluateAntiPattern(scene string, cal Calibration) int {
	if len(cal.BannedPhrases) == 0 {
		return 0
	}
	lower := strings.ToLower(scene)
	occurrences := 0
	for _, phrase := range cal.BannedPhrases {
		occurrences += strings.Count(lower, strings.ToLower(phrase))
	}
	return clampScore(100 - occurrences*15)
}

// evaluatePhase compares the scene's average sentence length against the
// pacing band of its calibrated phase. Inside the band scores 100; outside,
// the score drops 10 points per word of distance from the nearer bound.
func evaluatePhase(scene string, cal Calibration) int {
	profile, ok := cal.PhaseProfiles[cal.Phase]
	if cal.Phase == "" || !ok {
		return 0
	}
	sentences := splitSentences(scene)
	if len(sentences) == 0 {
		return 0
	}
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(tokenize(s))
	}
	avg := float64(totalWords) / float64(len(sentences))
	switch {
	case avg >= profile.MinAvgSentenceLen && avg <= profile.MaxAvgSentenceLen:
		return 100
	case avg < profile.MinAvgSentenceLen:
		return clampScore(int(100 - (profile.MinAvgSentenceLen-avg)*10))
	default:
		return clampScore(int(100 - (avg-profile.MaxAvgSentenceLen)*10))
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
