package model

// Emotion is the canonical palette key. Six values exist; the journey tracks
// only five of them. "hope" is reachable through section tones and the
// derived emotional mix, never as a journey marker.
type Emotion string

const (
	EmotionHope         Emotion = "hope"
	EmotionTension      Emotion = "tension"
	EmotionConfidence   Emotion = "confidence"
	EmotionUncertainty  Emotion = "uncertainty"
	EmotionBreakthrough Emotion = "breakthrough"
	EmotionHealing      Emotion = "healing"
)

// JourneyEmotions is the fixed declaration order of the five journey
// dimensions. Dominant-emotion ties break in favor of the earlier entry.
var JourneyEmotions = []Emotion{
	EmotionTension,
	EmotionConfidence,
	EmotionBreakthrough,
	EmotionHealing,
	EmotionUncertainty,
}

// EmotionalJourney holds the five length-normalized marker densities
// (occurrences / character count × 1000) and the winning dimension.
type EmotionalJourney struct {
	ProblemIntensity   float64 `json:"problem_intensity"`
	SolutionConfidence float64 `json:"solution_confidence"`
	InnovationLevel    float64 `json:"innovation_level"`
	HealingPotential   float64 `json:"healing_potential"`
	UncertaintyLevel   float64 `json:"uncertainty_level"`
	DominantEmotion    Emotion `json:"dominant_emotion"`
}

// Intensity maps a journey emotion key back to its raw marker density.
// Emotions outside the journey (hope) report zero.
func (j *EmotionalJourney) Intensity(e Emotion) float64 {
	switch e {
	case EmotionTension:
		return j.ProblemIntensity
	case EmotionConfidence:
		return j.SolutionConfidence
	case EmotionBreakthrough:
		return j.InnovationLevel
	case EmotionHealing:
		return j.HealingPotential
	case EmotionUncertainty:
		return j.UncertaintyLevel
	}
	return 0
}
