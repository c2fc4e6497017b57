package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/arthroviz/andry-engine/internal/model"
)

func sampleElements() []model.Element {
	return []model.Element{
		model.ResearchStar{X: 640, Y: 160, Size: 2, Color: "#f7f3d0", Connections: []int{1}},
		model.ResearchStar{X: 660, Y: 180, Size: 2.5, Color: "#f7f3d0"},
		model.AndryTrunk{X: 400, Y: 680, Height: 180, Thickness: 10, Color: "#c0392b"},
		model.AndryRoot{
			X: 400, Y: 680, Angle: 45, Length: 90, Thickness: 2, Color: "#c0392b",
			Branches: []model.RootBranch{{Angle: 60, Length: 45, Thickness: 1}},
		},
		model.PrecisionGrid{Spacing: 200, Opacity: 0.08, Color: "#c0392b"},
		model.HealingAura{X: 400, Y: 560, Radius: 140, Color: "#1abc9c", PulseAmplitude: 0.2},
		model.HealingParticle{X: 300, Y: 200, Size: 3, Color: "#16a085", PulseRate: 1, GrowthDirection: 270},
		model.AtmosphericParticle{X: 100, Y: 100, Size: 1, Color: "#e8eef4", Opacity: 0.1},
		model.EmotionalField{Emotion: model.EmotionHealing, X: 250, Y: 350, Size: 120, Intensity: 0.4, Color: "#16a085"},
		model.AndryBranch{X: 400, Y: 600, Angle: 140, Length: 70, Thickness: 4, Color: "#e74c3c", EmotionalTone: model.EmotionTension},
		model.DataFlow{
			Path:      model.BezierPath{X1: 100, Y1: 100, CX1: 200, CY1: 150, CX2: 300, CY2: 250, X2: 400, Y2: 300},
			Thickness: 2, Color: "#c0392b", Opacity: 0.5, FlowSpeed: 1, ParticleCount: 4,
		},
	}
}

func groupSequence(svg string) []string {
	var groups []string
	for _, line := range strings.Split(svg, "\n") {
		if strings.HasPrefix(line, `<g class="`) {
			name := strings.TrimPrefix(line, `<g class="`)
			groups = append(groups, strings.TrimSuffix(name, `">`))
		}
	}
	return groups
}

func TestSVGRendererInvalidCanvas(t *testing.T) {
	if _, err := NewSVGRenderer(0, 800); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewSVGRenderer(800, -1); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestSVGLayerOrderMatchesContract(t *testing.T) {
	r, err := NewSVGRenderer(800, 800)
	if err != nil {
		t.Fatalf("NewSVGRenderer failed: %v", err)
	}

	svg := r.Render(sampleElements(), model.Trauma, Annotation{})
	groups := groupSequence(svg)

	if len(groups) != len(LayerOrder) {
		t.Fatalf("Expected %d layer groups, got %d (%v)", len(LayerOrder), len(groups), groups)
	}
	for i, kind := range LayerOrder {
		if groups[i] != string(kind) {
			t.Errorf("Layer %d = %s, want %s", i, groups[i], kind)
		}
	}
}

func TestSVGOutputInvariantUnderInputPermutation(t *testing.T) {
	r, err := NewSVGRenderer(800, 800)
	if err != nil {
		t.Fatalf("NewSVGRenderer failed: %v", err)
	}

	elements := sampleElements()
	baseline := r.Render(elements, model.Trauma, Annotation{Title: "baseline"})

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]model.Element, len(elements))
		copy(shuffled, elements)
		rng.Shuffle(len(shuffled), func(i, j int) {
			// Keep star order stable; their connections are index-based.
			_, si := shuffled[i].(model.ResearchStar)
			_, sj := shuffled[j].(model.ResearchStar)
			if si || sj {
				return
			}
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if got := r.Render(shuffled, model.Trauma, Annotation{Title: "baseline"}); got != baseline {
			t.Fatal("Permuting the input element list changed the emitted markup")
		}
	}
}

func TestSVGEmbedsEscapedAnnotation(t *testing.T) {
	r, _ := NewSVGRenderer(800, 800)
	svg := r.Render(nil, model.SportsMedicine, Annotation{
		Title: `ACL <repair> & "return"`,
		Desc:  "outcomes at 2 years",
	})

	if !strings.Contains(svg, "<title>ACL &lt;repair&gt; &amp; &quot;return&quot;</title>") {
		t.Error("Title not escaped into markup")
	}
	if !strings.Contains(svg, "<desc>outcomes at 2 years</desc>") {
		t.Error("Description missing from markup")
	}
}

func TestSVGConstellationLinesPrecedeStars(t *testing.T) {
	r, _ := NewSVGRenderer(800, 800)
	svg := r.Render([]model.Element{
		model.ResearchStar{X: 600, Y: 150, Size: 2, Color: "#f7f3d0", Connections: []int{1}},
		model.ResearchStar{X: 650, Y: 170, Size: 2, Color: "#f7f3d0"},
	}, model.SportsMedicine, Annotation{})

	lineAt := strings.Index(svg, "<line")
	circleAt := strings.Index(svg, "<circle")
	if lineAt == -1 || circleAt == -1 {
		t.Fatal("Expected both a connection line and star circles")
	}
	if lineAt > circleAt {
		t.Error("Connection lines must be drawn under the stars")
	}
}

func TestSVGSkipsOutOfRangeConnections(t *testing.T) {
	r, _ := NewSVGRenderer(800, 800)
	svg := r.Render([]model.Element{
		model.ResearchStar{X: 600, Y: 150, Size: 2, Color: "#f7f3d0", Connections: []int{0, 5, -1}},
	}, model.SportsMedicine, Annotation{})

	if strings.Contains(svg, "<line") {
		t.Error("Self links and out-of-range links must not produce lines")
	}
}

func TestSVGRootChildrenAttachToParentEnd(t *testing.T) {
	r, _ := NewSVGRenderer(800, 800)
	// 90° points straight down: parent ends at (400, 780).
	svg := r.Render([]model.Element{
		model.AndryRoot{
			X: 400, Y: 680, Angle: 90, Length: 100, Thickness: 2, Color: "#c0392b",
			Branches: []model.RootBranch{{Angle: 90, Length: 20, Thickness: 1}},
		},
	}, model.SportsMedicine, Annotation{})

	if !strings.Contains(svg, `x1="400.00" y1="780.00"`) {
		t.Error("Child root segment should start at the parent endpoint")
	}
}
