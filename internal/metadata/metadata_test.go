package metadata

import (
	"strings"
	"testing"

	"github.com/arthroviz/andry-engine/internal/model"
)

func paletteScene(colors ...string) []model.Element {
	elements := make([]model.Element, 0, len(colors))
	for i, c := range colors {
		elements = append(elements, model.HealingParticle{
			X: float64(100 + i*50), Y: 200, Size: 3, Color: c,
		})
	}
	return elements
}

func TestFingerprintIsPureAndOrderInsensitive(t *testing.T) {
	a := model.AndryTrunk{X: 400, Y: 680, Height: 180, Thickness: 10, Color: "#c0392b"}
	b := model.HealingAura{X: 400, Y: 560, Radius: 140, Color: "#1abc9c"}
	c := model.ResearchStar{X: 640, Y: 160, Size: 2, Color: "#f7f3d0"}

	first := Fingerprint([]model.Element{a, b, c}, 800, 800)
	second := Fingerprint([]model.Element{a, b, c}, 800, 800)
	permuted := Fingerprint([]model.Element{c, a, b}, 800, 800)

	if first != second {
		t.Error("Fingerprint must be deterministic for identical input")
	}
	if first != permuted {
		t.Error("Fingerprint must not depend on element list order")
	}
	if len(first) != 16 {
		t.Errorf("Fingerprint length = %d, want 16", len(first))
	}
}

func TestFingerprintSeparatesDifferentScenes(t *testing.T) {
	base := []model.Element{model.AndryTrunk{X: 400, Y: 680, Height: 180, Thickness: 10, Color: "#c0392b"}}
	moved := []model.Element{model.AndryTrunk{X: 300, Y: 680, Height: 180, Thickness: 10, Color: "#c0392b"}}

	if Fingerprint(base, 800, 800) == Fingerprint(moved, 800, 800) {
		t.Error("Moving an element should change the fingerprint")
	}
	if Fingerprint(base, 800, 800) == Fingerprint(base, 400, 400) {
		t.Error("Canvas size should be part of the fingerprint")
	}
}

func TestFingerprintIncludesSizeVariance(t *testing.T) {
	particle := func(size float64) model.Element {
		return model.HealingParticle{X: 200, Y: 200, Size: size, Color: "#16a085"}
	}
	// Both lists share mean 4, min 2 and max 6; only the variance differs.
	spread := []model.Element{particle(2), particle(2), particle(6), particle(6)}
	packed := []model.Element{particle(2), particle(4), particle(4), particle(6)}

	if Fingerprint(spread, 800, 800) == Fingerprint(packed, 800, 800) {
		t.Error("Size variance should separate scenes with equal mean, min and max")
	}
}

func TestComplexityBoundedAndMonotonic(t *testing.T) {
	small := Complexity(paletteScene("#16a085"))
	large := Complexity(paletteScene("#16a085", "#e74c3c", "#3498db", "#f39c12", "#95a5a6"))

	if small < 0 || small > 1 || large < 0 || large > 1 {
		t.Errorf("Complexity out of [0,1]: small=%v large=%v", small, large)
	}
	if large <= small {
		t.Errorf("More elements must not lower complexity: small=%v large=%v", small, large)
	}

	saturated := make([]model.Element, 0, 1000)
	for i := 0; i < 1000; i++ {
		saturated = append(saturated, model.DataFlow{Thickness: 2, Color: "#c0392b"})
	}
	if got := Complexity(saturated); got != 1 {
		t.Errorf("Saturated scene complexity = %v, want clamp to 1", got)
	}
}

func TestRarityRisesWithColorVariety(t *testing.T) {
	mono := Rarity(paletteScene("#16a085", "#16a085", "#16a085", "#16a085", "#16a085"))
	varied := Rarity(paletteScene("#16a085", "#e74c3c", "#3498db", "#f39c12", "#95a5a6"))

	if varied < mono {
		t.Errorf("Five distinct colors should never score below one: mono=%v varied=%v", mono, varied)
	}
	if mono < 0 || mono > 1 || varied < 0 || varied > 1 {
		t.Errorf("Rarity out of [0,1]: mono=%v varied=%v", mono, varied)
	}
	if got := Rarity(nil); got != 0 {
		t.Errorf("Empty scene rarity = %v, want 0", got)
	}
}

func TestSignatureIDFormatAndUniqueness(t *testing.T) {
	first := NewSignatureID()
	second := NewSignatureID()

	if !strings.HasPrefix(first, "AKX-") {
		t.Errorf("Signature %q missing AKX- prefix", first)
	}
	if first == second {
		t.Error("Consecutive signatures must differ")
	}
	parts := strings.Split(first, "-")
	if len(parts) != 3 || len(parts[2]) != 8 {
		t.Errorf("Signature %q should be AKX-<timestamp>-<8 char suffix>", first)
	}
}

func TestBuildFillsProvenanceRecord(t *testing.T) {
	elements := paletteScene("#16a085", "#e74c3c")
	journey := model.EmotionalJourney{DominantEmotion: model.EmotionHealing}

	meta := Build(elements, journey, model.Trauma, 800, 800)

	if meta.VisualElementCount != 2 {
		t.Errorf("VisualElementCount = %d, want 2", meta.VisualElementCount)
	}
	if meta.CanvasWidth != 800 || meta.CanvasHeight != 800 {
		t.Errorf("Canvas = %dx%d, want 800x800", meta.CanvasWidth, meta.CanvasHeight)
	}
	if meta.Subspecialty != model.Trauma {
		t.Errorf("Subspecialty = %s, want trauma", meta.Subspecialty)
	}
	if meta.DominantEmotion != model.EmotionHealing {
		t.Errorf("DominantEmotion = %s, want healing", meta.DominantEmotion)
	}
	if meta.PatternFingerprint != Fingerprint(elements, 800, 800) {
		t.Error("Fingerprint in the record must match a direct computation")
	}
	if meta.GeneratedAt.IsZero() {
		t.Error("GeneratedAt must be stamped")
	}
}
