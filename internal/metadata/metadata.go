// Package metadata derives the provenance record for a generated scene:
// a reproducible pattern fingerprint and complexity score computed from the
// element list, a rarity estimate, and the non-reproducible signature id.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arthroviz/andry-engine/internal/model"
)

// complexityWeights rank element kinds by rendering cost. Flows and fields
// carry curves and gradients, atmospheric dust is nearly free.
var complexityWeights = map[model.ElementKind]float64{
	model.KindDataFlow:            3.0,
	model.KindEmotionalField:      3.0,
	model.KindResearchStar:        2.5,
	model.KindAndryRoot:           2.0,
	model.KindAndryBranch:         2.0,
	model.KindHealingAura:         2.0,
	model.KindAndryTrunk:          1.5,
	model.KindHealingParticle:     1.0,
	model.KindPrecisionGrid:       1.0,
	model.KindAtmosphericParticle: 0.5,
}

// complexityCeiling is the weighted score of a fully saturated scene. Scores
// normalize against it so complexity stays in [0, 1].
const complexityCeiling = 400.0

// Build assembles the full provenance record for one generated scene.
func Build(
	elements []model.Element,
	journey model.EmotionalJourney,
	subspecialty model.Subspecialty,
	width, height int,
) model.GenerationMetadata {
	return model.GenerationMetadata{
		SignatureID:         NewSignatureID(),
		RarityScore:         Rarity(elements),
		PatternFingerprint:  Fingerprint(elements, width, height),
		CanvasWidth:         width,
		CanvasHeight:        height,
		VisualElementCount:  len(elements),
		RenderingComplexity: Complexity(elements),
		Subspecialty:        subspecialty,
		DominantEmotion:     journey.DominantEmotion,
		GeneratedAt:         time.Now().UTC(),
	}
}

// NewSignatureID mints an identifier that embeds the mint time plus a random
// suffix. Two generations of the same article get different signatures.
func NewSignatureID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("AKX-%s-%s", time.Now().UTC().Format("20060102T150405"), suffix)
}

// Fingerprint hashes the structural identity of the element list: per-kind
// counts, spatial distribution, color frequencies, and the size statistics
// (mean, variance, min, max).
// The serialization is key-sorted, so the same element multiset always hashes
// to the same value regardless of list order.
func Fingerprint(elements []model.Element, width, height int) string {
	lines := make([]string, 0, 32)

	counts := map[model.ElementKind]int{}
	colors := map[string]int{}
	quadrants := [4]int{}
	var sumX, sumY, sumSize float64
	var positioned int
	sizes := make([]float64, 0, len(elements))

	cx, cy := float64(width)/2, float64(height)/2
	for _, el := range elements {
		counts[el.ElementKind()]++
		if c := elementColor(el); c != "" {
			colors[strings.ToLower(c)]++
		}
		size := elementSize(el)
		sizes = append(sizes, size)
		sumSize += size

		x, y, ok := elementPosition(el)
		if !ok {
			continue
		}
		positioned++
		sumX += x
		sumY += y
		q := 0
		if x >= cx {
			q++
		}
		if y >= cy {
			q += 2
		}
		quadrants[q]++
	}

	for kind, n := range counts {
		lines = append(lines, fmt.Sprintf("count.%s=%d", kind, n))
	}
	for c, n := range colors {
		lines = append(lines, fmt.Sprintf("color.%s=%d", c, n))
	}
	for q, n := range quadrants {
		lines = append(lines, fmt.Sprintf("quadrant.%d=%d", q, n))
	}

	if positioned > 0 {
		comX, comY := sumX/float64(positioned), sumY/float64(positioned)
		var spread float64
		for _, el := range elements {
			if x, y, ok := elementPosition(el); ok {
				dx, dy := x-comX, y-comY
				spread += dx*dx + dy*dy
			}
		}
		lines = append(lines,
			fmt.Sprintf("com.x=%.4f", comX),
			fmt.Sprintf("com.y=%.4f", comY),
			fmt.Sprintf("spread=%.4f", spread/float64(positioned)),
		)
	}
	if len(sizes) > 0 {
		mean := sumSize / float64(len(sizes))
		minSize, maxSize := sizes[0], sizes[0]
		var variance float64
		for _, s := range sizes {
			if s < minSize {
				minSize = s
			}
			if s > maxSize {
				maxSize = s
			}
			d := s - mean
			variance += d * d
		}
		lines = append(lines,
			fmt.Sprintf("size.mean=%.4f", mean),
			fmt.Sprintf("size.var=%.4f", variance/float64(len(sizes))),
			fmt.Sprintf("size.min=%.4f", minSize),
			fmt.Sprintf("size.max=%.4f", maxSize),
		)
	}
	lines = append(lines, fmt.Sprintf("canvas=%dx%d", width, height))

	sort.Strings(lines)
	digest := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(digest[:])[:16]
}

// Complexity scores the rendering cost of the scene on [0, 1].
func Complexity(elements []model.Element) float64 {
	var score float64
	for _, el := range elements {
		score += complexityWeights[el.ElementKind()]
	}
	score /= complexityCeiling
	if score > 1 {
		score = 1
	}
	return score
}

// Rarity estimates how uncommon a composition is on [0, 1]. More distinct
// colors raise the score, a single dominant color lowers it.
func Rarity(elements []model.Element) float64 {
	colors := map[string]int{}
	total := 0
	for _, el := range elements {
		if c := elementColor(el); c != "" {
			colors[strings.ToLower(c)]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	maxCount := 0
	for _, n := range colors {
		if n > maxCount {
			maxCount = n
		}
	}
	concentration := float64(maxCount) / float64(total)

	variety := float64(len(colors)) / 10
	if variety > 1 {
		variety = 1
	}

	score := variety*0.6 + (1-concentration)*0.4
	if score > 1 {
		score = 1
	}
	return score
}

func elementPosition(el model.Element) (float64, float64, bool) {
	switch v := el.(type) {
	case model.AndryRoot:
		return v.X, v.Y, true
	case model.AndryTrunk:
		return v.X, v.Y, true
	case model.AndryBranch:
		return v.X, v.Y, true
	case model.HealingParticle:
		return v.X, v.Y, true
	case model.HealingAura:
		return v.X, v.Y, true
	case model.DataFlow:
		return v.Path.X1, v.Path.Y1, true
	case model.EmotionalField:
		return v.X, v.Y, true
	case model.ResearchStar:
		return v.X, v.Y, true
	case model.AtmosphericParticle:
		return v.X, v.Y, true
	default:
		// The grid covers the whole canvas and has no anchor point.
		return 0, 0, false
	}
}

// elementSize reduces each variant to one scalar: explicit size first, then
// radius, then stroke thickness, with length and height scaled down to stay
// comparable.
func elementSize(el model.Element) float64 {
	switch v := el.(type) {
	case model.HealingParticle:
		return v.Size
	case model.EmotionalField:
		return v.Size
	case model.ResearchStar:
		return v.Size
	case model.AtmosphericParticle:
		return v.Size
	case model.HealingAura:
		return v.Radius
	case model.AndryRoot:
		return v.Thickness
	case model.AndryTrunk:
		return v.Thickness
	case model.AndryBranch:
		return v.Thickness
	case model.DataFlow:
		return v.Thickness
	default:
		return 5
	}
}

func elementColor(el model.Element) string {
	switch v := el.(type) {
	case model.AndryRoot:
		return v.Color
	case model.AndryTrunk:
		return v.Color
	case model.AndryBranch:
		return v.Color
	case model.HealingParticle:
		return v.Color
	case model.HealingAura:
		return v.Color
	case model.DataFlow:
		return v.Color
	case model.EmotionalField:
		return v.Color
	case model.ResearchStar:
		return v.Color
	case model.AtmosphericParticle:
		return v.Color
	case model.PrecisionGrid:
		return v.Color
	default:
		return ""
	}
}
