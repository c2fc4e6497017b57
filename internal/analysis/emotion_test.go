package analysis

import (
	"strings"
	"testing"

	"github.com/arthroviz/andry-engine/internal/model"
)

func TestAnalyzeEmptyTextDefaultsToConfidence(t *testing.T) {
	journey := NewJourneyAnalyzer().Analyze("")

	if journey.DominantEmotion != model.EmotionConfidence {
		t.Errorf("Expected confidence default, got %s", journey.DominantEmotion)
	}
	for _, e := range model.JourneyEmotions {
		if journey.Intensity(e) != 0 {
			t.Errorf("Expected zero intensity for %s, got %v", e, journey.Intensity(e))
		}
	}
}

func TestAnalyzeHealingMarkers(t *testing.T) {
	journey := NewJourneyAnalyzer().Analyze("evidence of healing and recovery in patients")

	if journey.HealingPotential <= 0 {
		t.Errorf("Expected healing potential > 0, got %v", journey.HealingPotential)
	}
	if journey.DominantEmotion != model.EmotionHealing {
		t.Errorf("Expected healing dominant, got %s", journey.DominantEmotion)
	}
}

func TestAnalyzeTieBreaksInDeclarationOrder(t *testing.T) {
	// One confidence marker and one breakthrough marker: equal densities.
	// Confidence is declared before breakthrough, so it must win every run.
	text := "an effective and novel approach"
	analyzer := NewJourneyAnalyzer()

	for i := 0; i < 10; i++ {
		journey := analyzer.Analyze(text)
		if journey.SolutionConfidence != journey.InnovationLevel {
			t.Fatalf("Test setup broken: expected equal intensities, got %v vs %v",
				journey.SolutionConfidence, journey.InnovationLevel)
		}
		if journey.DominantEmotion != model.EmotionConfidence {
			t.Fatalf("Run %d: expected confidence on tie, got %s", i, journey.DominantEmotion)
		}
	}
}

func TestAnalyzeDensityIsLengthNormalized(t *testing.T) {
	analyzer := NewJourneyAnalyzer()
	short := analyzer.Analyze("healing")
	long := analyzer.Analyze("healing" + strings.Repeat(" filler", 200))

	if short.HealingPotential <= long.HealingPotential {
		t.Errorf("Expected higher density in shorter text: %v vs %v",
			short.HealingPotential, long.HealingPotential)
	}
}

func TestAnalyzeNormalizesByCharacterCount(t *testing.T) {
	// Same rune count and one healing marker each; the accented padding is
	// twice the bytes, which must not dilute the density.
	analyzer := NewJourneyAnalyzer()
	ascii := analyzer.Analyze("healing " + strings.Repeat("a", 20))
	accented := analyzer.Analyze("healing " + strings.Repeat("é", 20))

	if ascii.HealingPotential != accented.HealingPotential {
		t.Errorf("Density should depend on characters, not bytes: %v vs %v",
			ascii.HealingPotential, accented.HealingPotential)
	}
}

func TestAnalyzeWholeWordMatching(t *testing.T) {
	// "painter" must not count as "pain".
	journey := NewJourneyAnalyzer().Analyze("the painter worked")
	if journey.ProblemIntensity != 0 {
		t.Errorf("Expected no tension markers in 'painter', got %v", journey.ProblemIntensity)
	}
}
