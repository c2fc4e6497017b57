package vocab

import (
	"testing"

	"github.com/arthroviz/andry-engine/internal/model"
)

func TestMedicalCategoryWeights(t *testing.T) {
	expected := map[string]float64{
		"procedures": 1.0,
		"anatomy":    0.8,
		"outcomes":   1.2,
		"research":   0.9,
	}

	categories := MedicalCategories()
	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(categories))
	}

	for name, weight := range expected {
		cat, ok := categories[name]
		if !ok {
			t.Errorf("Missing category %q", name)
			continue
		}
		if cat.Weight != weight {
			t.Errorf("Category %q weight = %v, want %v", name, cat.Weight, weight)
		}
		if len(cat.Terms) == 0 {
			t.Errorf("Category %q has no terms", name)
		}
	}
}

func TestJourneyMarkersCoverAllDimensions(t *testing.T) {
	for _, e := range model.JourneyEmotions {
		if len(JourneyMarkers(e)) == 0 {
			t.Errorf("No journey markers for %q", e)
		}
	}

	// Hope is not a journey dimension.
	if markers := JourneyMarkers(model.EmotionHope); markers != nil {
		t.Errorf("Expected no journey markers for hope, got %v", markers)
	}
}

func TestSectionTonesIncludeHope(t *testing.T) {
	tones := SectionToneMarkers()
	if len(tones) != 6 {
		t.Fatalf("Expected 6 section tones, got %d", len(tones))
	}
	if len(tones[model.EmotionHope]) == 0 {
		t.Error("Expected hope markers in section tone table")
	}
}

func TestSubspecialtyTables(t *testing.T) {
	for _, s := range model.Subspecialties {
		if len(SubspecialtyKeywords(s)) == 0 {
			t.Errorf("No keywords for subspecialty %q", s)
		}
		sections := DefaultSections(s)
		if len(sections) == 0 {
			t.Errorf("No default sections for subspecialty %q", s)
		}
		for _, sec := range sections {
			if sec.Importance <= 0 || sec.Importance > 1 {
				t.Errorf("%s section %q importance out of range: %v", s, sec.Title, sec.Importance)
			}
		}
	}
}

func TestDefaultSectionsReturnsCopy(t *testing.T) {
	first := DefaultSections(model.SportsMedicine)
	first[0].Importance = -1

	second := DefaultSections(model.SportsMedicine)
	if second[0].Importance == -1 {
		t.Error("DefaultSections must return an independent copy")
	}
}

func TestEmotionColors(t *testing.T) {
	all := []model.Emotion{
		model.EmotionHope,
		model.EmotionTension,
		model.EmotionConfidence,
		model.EmotionUncertainty,
		model.EmotionBreakthrough,
		model.EmotionHealing,
	}
	for _, e := range all {
		c := EmotionColor(e)
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("Emotion %q color %q is not a hex color", e, c)
		}
	}

	// Unknown keys fall back rather than returning empty styling.
	if EmotionColor(model.Emotion("unknown")) == "" {
		t.Error("Expected fallback color for unknown emotion")
	}
}

func TestSubspecialtyStyleFallback(t *testing.T) {
	style := SubspecialtyStyle(model.Subspecialty("unknown"))
	if style.Accent == "" {
		t.Error("Expected fallback style for unknown subspecialty")
	}
}
