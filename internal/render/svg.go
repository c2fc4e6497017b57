// Package render walks the generated element list in the fixed layer order
// and emits the scene, either as SVG markup or as a raster image.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

// LayerOrder is the back-to-front rendering contract. Reordering it changes
// visual correctness, so it is exported for tests to pin down.
var LayerOrder = []model.ElementKind{
	model.KindPrecisionGrid,
	model.KindAtmosphericParticle,
	model.KindEmotionalField,
	model.KindHealingAura,
	model.KindAndryRoot,
	model.KindAndryTrunk,
	model.KindAndryBranch,
	model.KindDataFlow,
	model.KindHealingParticle,
	model.KindResearchStar,
}

// Annotation carries the descriptive metadata embedded into the exported
// markup. Both fields are optional.
type Annotation struct {
	Title string
	Desc  string
}

// SVGRenderer emits a vector scene sized to a fixed canvas.
type SVGRenderer struct {
	width  int
	height int
}

func NewSVGRenderer(width, height int) (*SVGRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", width, height)
	}
	return &SVGRenderer{width: width, height: height}, nil
}

// Render draws the element list back to front. Elements are grouped by kind
// into the fixed layer sequence, so the order primitives were generated in
// never affects the emitted order.
func (r *SVGRenderer) Render(elements []model.Element, subspecialty model.Subspecialty, ann Annotation) string {
	byKind := make(map[model.ElementKind][]model.Element, len(LayerOrder))
	for _, el := range elements {
		byKind[el.ElementKind()] = append(byKind[el.ElementKind()], el)
	}

	style := vocab.SubspecialtyStyle(subspecialty)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		r.width, r.height, r.width, r.height)
	b.WriteString("\n")

	if ann.Title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", escape(ann.Title))
	}
	if ann.Desc != "" {
		fmt.Fprintf(&b, "<desc>%s</desc>\n", escape(ann.Desc))
	}

	fmt.Fprintf(&b, `<defs>
<linearGradient id="backdrop" x1="0" y1="0" x2="0" y2="1">
<stop offset="0" stop-color="%s"/>
<stop offset="1" stop-color="%s"/>
</linearGradient>
<radialGradient id="aura">
<stop offset="0" stop-color="%s" stop-opacity="0.45"/>
<stop offset="1" stop-color="%s" stop-opacity="0"/>
</radialGradient>
</defs>
`, style.Top, style.Bottom, vocab.EmotionLight(model.EmotionHealing), vocab.EmotionLight(model.EmotionHealing))

	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#backdrop)"/>`, r.width, r.height)
	b.WriteString("\n")

	for _, kind := range LayerOrder {
		group := byKind[kind]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<g class="%s">`, kind)
		b.WriteString("\n")
		r.renderGroup(&b, kind, group)
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func (r *SVGRenderer) renderGroup(b *strings.Builder, kind model.ElementKind, group []model.Element) {
	switch kind {
	case model.KindPrecisionGrid:
		for _, el := range group {
			r.renderGrid(b, el.(model.PrecisionGrid))
		}
	case model.KindAtmosphericParticle:
		for _, el := range group {
			p := el.(model.AtmosphericParticle)
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s" data-drift-speed="%s" data-drift-direction="%s"/>`,
				num(p.X), num(p.Y), num(p.Size), p.Color, num(p.Opacity), num(p.DriftSpeed), num(p.DriftDirection))
			b.WriteString("\n")
		}
	case model.KindEmotionalField:
		for _, el := range group {
			f := el.(model.EmotionalField)
			fmt.Fprintf(b, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" fill-opacity="0.18" data-emotion="%s" data-morph-speed="%s"/>`,
				num(f.X), num(f.Y), num(f.Size), num(f.Size*0.6), f.Color, f.Emotion, num(f.MorphSpeed))
			b.WriteString("\n")
		}
	case model.KindHealingAura:
		for _, el := range group {
			a := el.(model.HealingAura)
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="url(#aura)" data-pulse-amplitude="%s"/>`,
				num(a.X), num(a.Y), num(a.Radius), num(a.PulseAmplitude))
			b.WriteString("\n")
		}
	case model.KindAndryRoot:
		for _, el := range group {
			r.renderRoot(b, el.(model.AndryRoot))
		}
	case model.KindAndryTrunk:
		for _, el := range group {
			t := el.(model.AndryTrunk)
			fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
				num(t.X), num(t.Y), num(t.X), num(t.Y-t.Height), t.Color, num(t.Thickness))
			b.WriteString("\n")
		}
	case model.KindAndryBranch:
		for _, el := range group {
			br := el.(model.AndryBranch)
			x2, y2 := branchEnd(br.X, br.Y, br.Angle, br.Length)
			fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round" data-tone="%s"/>`,
				num(br.X), num(br.Y), num(x2), num(y2), br.Color, num(br.Thickness), br.EmotionalTone)
			b.WriteString("\n")
		}
	case model.KindDataFlow:
		for _, el := range group {
			f := el.(model.DataFlow)
			fmt.Fprintf(b, `<path d="M %s %s C %s %s, %s %s, %s %s" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="%s" data-flow-speed="%s" data-particle-count="%d"/>`,
				num(f.Path.X1), num(f.Path.Y1), num(f.Path.CX1), num(f.Path.CY1),
				num(f.Path.CX2), num(f.Path.CY2), num(f.Path.X2), num(f.Path.Y2),
				f.Color, num(f.Thickness), num(f.Opacity), num(f.FlowSpeed), f.ParticleCount)
			b.WriteString("\n")
		}
	case model.KindHealingParticle:
		for _, el := range group {
			p := el.(model.HealingParticle)
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" data-pulse-rate="%s" data-growth-direction="%s"/>`,
				num(p.X), num(p.Y), num(p.Size), p.Color, num(p.PulseRate), num(p.GrowthDirection))
			b.WriteString("\n")
		}
	case model.KindResearchStar:
		r.renderConstellation(b, group)
	}
}

func (r *SVGRenderer) renderGrid(b *strings.Builder, grid model.PrecisionGrid) {
	if grid.Spacing <= 0 {
		return
	}
	w, h := float64(r.width), float64(r.height)
	for x := grid.Spacing; x < w; x += grid.Spacing {
		fmt.Fprintf(b, `<line x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="0.5"/>`,
			num(x), num(x), num(h), grid.Color, num(grid.Opacity))
		b.WriteString("\n")
	}
	for y := grid.Spacing; y < h; y += grid.Spacing {
		fmt.Fprintf(b, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="0.5"/>`,
			num(y), num(w), num(y), grid.Color, num(grid.Opacity))
		b.WriteString("\n")
	}
}

// renderRoot draws the main root segment and its recursive children as
// sibling lines. Roots grow below the ground line, so angles map downward.
func (r *SVGRenderer) renderRoot(b *strings.Builder, root model.AndryRoot) {
	endX, endY := rootEnd(root.X, root.Y, root.Angle, root.Length)
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
		num(root.X), num(root.Y), num(endX), num(endY), root.Color, num(root.Thickness))
	b.WriteString("\n")
	r.renderRootChildren(b, root.Branches, endX, endY, root.Color)
}

func (r *SVGRenderer) renderRootChildren(b *strings.Builder, branches []model.RootBranch, fromX, fromY float64, color string) {
	for _, child := range branches {
		endX, endY := rootEnd(fromX, fromY, child.Angle, child.Length)
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
			num(fromX), num(fromY), num(endX), num(endY), color, num(child.Thickness))
		b.WriteString("\n")
		r.renderRootChildren(b, child.Children, endX, endY, color)
	}
}

// renderConstellation draws connection lines first so stars sit on top.
// Connections resolve sibling coordinates by index within the star group.
func (r *SVGRenderer) renderConstellation(b *strings.Builder, group []model.Element) {
	stars := make([]model.ResearchStar, len(group))
	for i, el := range group {
		stars[i] = el.(model.ResearchStar)
	}

	for i, star := range stars {
		for _, target := range star.Connections {
			if target < 0 || target >= len(stars) || target == i {
				continue
			}
			other := stars[target]
			fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5" stroke-opacity="0.3"/>`,
				num(star.X), num(star.Y), num(other.X), num(other.Y), star.Color)
			b.WriteString("\n")
		}
	}
	for _, star := range stars {
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" data-twinkle-rate="%s"/>`,
			num(star.X), num(star.Y), num(star.Size), star.Color, num(star.TwinkleRate))
		b.WriteString("\n")
	}
}

// rootEnd resolves an angle in degrees to a point below the origin
// (canvas y grows downward).
func rootEnd(x, y, angleDeg, length float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return x + math.Cos(rad)*length, y + math.Sin(rad)*length
}

// branchEnd resolves an angle in degrees to a point above the origin.
func branchEnd(x, y, angleDeg, length float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return x + math.Cos(rad)*length, y - math.Sin(rad)*length
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return replacer.Replace(s)
}
