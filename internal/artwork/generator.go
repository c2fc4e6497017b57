// Package artwork is the procedural core: it converts the analyzed feature
// bundle into the ordered list of visual primitives that make up an Andry
// Tree composition.
package artwork

import (
	"fmt"
	"math"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

const (
	// DefaultCanvasSize is the fixed conceptual canvas edge in units.
	DefaultCanvasSize = 800

	// groundRatio places the ground line the roots grow under and the
	// trunk stands on.
	groundRatio = 0.85

	// rootMaxDepth bounds the recursive root branching. Depth is a fixed
	// constant so malformed evidence scores can never blow up the output.
	rootMaxDepth = 2

	atmosphericColor = "#e8eef4"
)

// Generator produces the element list for one article. All randomness comes
// from the injected source; identical inputs and an identical seed reproduce
// the identical list.
type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate runs the seven generation steps in their fixed order and returns
// the combined element list. Missing collections (sections, statistics,
// citations) simply produce zero elements for their step. The only error is
// a non-positive canvas.
func (g *Generator) Generate(
	features model.ArticleFeatures,
	journey model.EmotionalJourney,
	subspecialty model.Subspecialty,
	width, height int,
) ([]model.Element, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", width, height)
	}

	w, h := float64(width), float64(height)
	style := vocab.SubspecialtyStyle(subspecialty)

	var elements []model.Element
	elements = append(elements, g.generateRoots(features, w, h, style)...)
	elements = append(elements, g.generateTrunkAndBranches(features, w, h, style)...)
	elements = append(elements, g.generateHealing(journey, w, h)...)
	elements = append(elements, g.generateDataFlows(features, w, h, style)...)
	elements = append(elements, g.generateEmotionalFields(journey, w, h)...)
	elements = append(elements, g.generateConstellation(features, w, h)...)
	elements = append(elements, g.generateAtmosphere(features, w, h, style)...)
	return elements, nil
}

// generateRoots fans max(3, floor(evidenceStrength×8)) roots across the lower
// half-circle beneath the ground line. Each root recursively spawns 1–3
// children at jittered angles for up to rootMaxDepth levels.
func (g *Generator) generateRoots(f model.ArticleFeatures, w, h float64, style vocab.Style) []model.Element {
	count := int(math.Floor(f.EvidenceStrength * 8))
	if count < 3 {
		count = 3
	}

	baseX, baseY := w/2, h*groundRatio
	length := 50 + f.EvidenceStrength*100
	thickness := 1 + f.EvidenceStrength*3

	roots := make([]model.Element, 0, count)
	for i := 0; i < count; i++ {
		// Angles in (0°, 180°) point below the ground line.
		angle := 180 * (float64(i) + 0.5) / float64(count)
		roots = append(roots, model.AndryRoot{
			X:         baseX,
			Y:         baseY,
			Angle:     angle,
			Length:    length,
			Thickness: thickness,
			Color:     style.Accent,
			Branches:  g.rootChildren(angle, length, thickness, 1),
		})
	}
	return roots
}

func (g *Generator) rootChildren(parentAngle, parentLength, parentThickness float64, depth int) []model.RootBranch {
	if depth > rootMaxDepth {
		return nil
	}
	count := 1 + g.rng.Intn(3)
	children := make([]model.RootBranch, 0, count)
	for i := 0; i < count; i++ {
		scale := 0.5 + g.rng.Float64()*0.2
		angle := parentAngle + (g.rng.Float64()*60 - 30)
		child := model.RootBranch{
			Angle:     angle,
			Length:    parentLength * scale,
			Thickness: parentThickness * scale,
		}
		child.Children = g.rootChildren(angle, child.Length, child.Thickness, depth+1)
		children = append(children, child)
	}
	return children
}

// generateTrunkAndBranches raises one trunk sized by the section count and
// one branch per content section, alternating sides. Branches longer than 80
// units have a 50% chance of spawning a single secondary branch.
func (g *Generator) generateTrunkAndBranches(f model.ArticleFeatures, w, h float64, style vocab.Style) []model.Element {
	sections := f.ContentSections
	trunkHeight := math.Min(300, float64(len(sections))*40+100)
	trunk := model.AndryTrunk{
		X:         w / 2,
		Y:         h * groundRatio,
		Height:    trunkHeight,
		Thickness: 8 + f.TechnicalDensity*5,
		Color:     style.Accent,
	}

	elements := []model.Element{trunk}
	for i, section := range sections {
		// Left side gets 120–180°, right side 0–60°.
		var angle float64
		if i%2 == 0 {
			angle = 120 + g.rng.Float64()*60
		} else {
			angle = g.rng.Float64() * 60
		}

		attachY := trunk.Y - trunkHeight*float64(i+1)/float64(len(sections)+1)
		branch := model.AndryBranch{
			X:             trunk.X,
			Y:             attachY,
			Angle:         angle,
			Length:        60 + section.Importance*40,
			Thickness:     4 + section.Complexity*2,
			Color:         vocab.EmotionColor(section.EmotionalTone),
			EmotionalTone: section.EmotionalTone,
		}
		elements = append(elements, branch)

		if branch.Length > 80 && g.rng.Float64() < 0.5 {
			along := 0.6 + g.rng.Float64()*0.2
			rad := angle * math.Pi / 180
			elements = append(elements, model.AndryBranch{
				X:             branch.X + math.Cos(rad)*branch.Length*along,
				Y:             branch.Y - math.Sin(rad)*branch.Length*along,
				Angle:         angle + (g.rng.Float64()*40 - 20),
				Length:        branch.Length * 0.6,
				Thickness:     branch.Thickness * 0.6,
				Color:         branch.Color,
				EmotionalTone: branch.EmotionalTone,
			})
		}
	}
	return elements
}

// generateHealing scatters floor(healingPotential×15)+5 particles with
// upward-biased drift over the upper-mid canvas plus one large aura in the
// lower-mid canvas.
func (g *Generator) generateHealing(j model.EmotionalJourney, w, h float64) []model.Element {
	count := int(math.Floor(j.HealingPotential*15)) + 5
	elements := make([]model.Element, 0, count+1)
	for i := 0; i < count; i++ {
		elements = append(elements, model.HealingParticle{
			X:               w*0.15 + g.rng.Float64()*w*0.7,
			Y:               h*0.1 + g.rng.Float64()*h*0.35,
			Size:            2 + g.rng.Float64()*4,
			Color:           vocab.EmotionColor(model.EmotionHealing),
			PulseRate:       0.5 + g.rng.Float64()*1.5,
			GrowthDirection: 270 + (g.rng.Float64()*90 - 45), // up ±45°
		})
	}
	elements = append(elements, model.HealingAura{
		X:              w / 2,
		Y:              h * 0.7,
		Radius:         100 + j.HealingPotential*150,
		Color:          vocab.EmotionLight(model.EmotionHealing),
		PulseAmplitude: 0.1 + j.HealingPotential*0.2,
	})
	return elements
}

// generateDataFlows draws one center-biased cubic Bezier per statistical
// record, weighted by that record's significance.
func (g *Generator) generateDataFlows(f model.ArticleFeatures, w, h float64, style vocab.Style) []model.Element {
	flows := make([]model.Element, 0, len(f.StatisticalData))
	for _, stat := range f.StatisticalData {
		flows = append(flows, model.DataFlow{
			Path: model.BezierPath{
				X1: g.centerBiased(w), Y1: g.centerBiased(h),
				CX1: g.centerBiased(w), CY1: g.centerBiased(h),
				CX2: g.centerBiased(w), CY2: g.centerBiased(h),
				X2: g.centerBiased(w), Y2: g.centerBiased(h),
			},
			Thickness:     1 + stat.Significance*2,
			Color:         style.Accent,
			Opacity:       0.3 + stat.Significance*0.3,
			FlowSpeed:     0.5 + stat.Significance*0.75,
			ParticleCount: int(stat.Significance*5) + 2,
		})
	}
	return flows
}

// centerBiased draws a coordinate clustered around the canvas center.
func (g *Generator) centerBiased(dim float64) float64 {
	return dim/2 + (g.rng.Float64()-0.5)*dim*0.8
}

// generateEmotionalFields emits one soft elliptical field per journey
// dimension with intensity ≥ 0.01, spread horizontally across the canvas.
func (g *Generator) generateEmotionalFields(j model.EmotionalJourney, w, h float64) []model.Element {
	var fields []model.Element
	for i, e := range model.JourneyEmotions {
		intensity := j.Intensity(e)
		if intensity < 0.01 {
			continue
		}
		fields = append(fields, model.EmotionalField{
			Emotion:    e,
			X:          w*(float64(i)+0.5)/float64(len(model.JourneyEmotions)) + (g.rng.Float64()-0.5)*60,
			Y:          h*0.25 + g.rng.Float64()*h*0.45,
			Size:       50 + intensity*200,
			Intensity:  intensity,
			Color:      vocab.EmotionColor(e),
			MorphSpeed: 0.3 + g.rng.Float64()*0.4,
		})
	}
	return fields
}

// generateConstellation places one star per citation radially around the
// fixed upper-right constellation center and links each star to up to three
// neighbors in a small index window.
func (g *Generator) generateConstellation(f model.ArticleFeatures, w, h float64) []model.Element {
	n := len(f.ResearchCitations)
	if n == 0 {
		return nil
	}

	centerX, centerY := w*0.8, h*0.2
	stars := make([]model.Element, 0, n)
	for i, citation := range f.ResearchCitations {
		theta := 2 * math.Pi * float64(i) / float64(n)
		distance := 30 + citation.Importance*80

		connectionCount := g.rng.Intn(4)
		seen := map[int]bool{i: true}
		var connections []int
		for c := 0; c < connectionCount; c++ {
			offset := 1 + g.rng.Intn(3)
			if g.rng.Float64() < 0.5 {
				offset = -offset
			}
			target := i + offset
			if target < 0 || target >= n || seen[target] {
				continue
			}
			seen[target] = true
			connections = append(connections, target)
		}

		stars = append(stars, model.ResearchStar{
			X:           centerX + math.Cos(theta)*distance,
			Y:           centerY + math.Sin(theta)*distance,
			Size:        1.5 + citation.Impact*2.5,
			Color:       "#f7f3d0",
			TwinkleRate: 0.5 + g.rng.Float64()*2,
			Connections: connections,
		})
	}
	return stars
}

// generateAtmosphere fills the whole canvas with floor(technicalDensity×100)+20
// low-opacity particles and lays down the precision grid.
func (g *Generator) generateAtmosphere(f model.ArticleFeatures, w, h float64, style vocab.Style) []model.Element {
	count := int(math.Floor(f.TechnicalDensity*100)) + 20
	elements := make([]model.Element, 0, count+1)
	for i := 0; i < count; i++ {
		elements = append(elements, model.AtmosphericParticle{
			X:              g.rng.Float64() * w,
			Y:              g.rng.Float64() * h,
			Size:           0.5 + g.rng.Float64()*2,
			Color:          atmosphericColor,
			Opacity:        0.05 + g.rng.Float64()*0.15,
			DriftSpeed:     0.2 + g.rng.Float64()*0.6,
			DriftDirection: g.rng.Float64() * 360,
		})
	}
	elements = append(elements, model.PrecisionGrid{
		Spacing: 30 + f.TechnicalDensity*20,
		Opacity: 0.05 + f.TechnicalDensity*0.1,
		Color:   style.Accent,
	})
	return elements
}
