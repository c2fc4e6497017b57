package analysis

import (
	"regexp"
	"unicode/utf8"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

// JourneyAnalyzer scores the five emotional journey dimensions. It is a pure
// function of the text and never touches ArticleFeatures.
type JourneyAnalyzer struct {
	markers map[model.Emotion]map[string]*regexp.Regexp
}

func NewJourneyAnalyzer() *JourneyAnalyzer {
	markers := make(map[model.Emotion]map[string]*regexp.Regexp, len(model.JourneyEmotions))
	for _, e := range model.JourneyEmotions {
		markers[e] = compileTerms(vocab.JourneyMarkers(e))
	}
	return &JourneyAnalyzer{markers: markers}
}

// Analyze computes each dimension as marker occurrences per character,
// scaled by 1000. The dominant emotion is the arg-max in declaration order
// (tension, confidence, breakthrough, healing, uncertainty); a strictly
// greater score is required to displace an earlier winner, and an all-zero
// journey defaults to confidence.
func (a *JourneyAnalyzer) Analyze(text string) model.EmotionalJourney {
	// Characters, not bytes, so non-ASCII articles normalize the same way.
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return model.EmotionalJourney{DominantEmotion: model.EmotionConfidence}
	}

	intensity := func(e model.Emotion) float64 {
		return float64(countMatches(text, a.markers[e])) / float64(length) * 1000
	}

	journey := model.EmotionalJourney{
		ProblemIntensity:   intensity(model.EmotionTension),
		SolutionConfidence: intensity(model.EmotionConfidence),
		InnovationLevel:    intensity(model.EmotionBreakthrough),
		HealingPotential:   intensity(model.EmotionHealing),
		UncertaintyLevel:   intensity(model.EmotionUncertainty),
	}

	dominant := model.EmotionConfidence
	best := 0.0
	for _, e := range model.JourneyEmotions {
		if v := journey.Intensity(e); v > best {
			dominant = e
			best = v
		}
	}
	journey.DominantEmotion = dominant
	return journey
}
