package model

// ElementKind tags the closed set of visual element variants.
type ElementKind string

const (
	KindAndryRoot           ElementKind = "andryRoot"
	KindAndryTrunk          ElementKind = "andryTrunk"
	KindAndryBranch         ElementKind = "andryBranch"
	KindHealingParticle     ElementKind = "healingParticle"
	KindHealingAura         ElementKind = "healingAura"
	KindDataFlow            ElementKind = "dataFlow"
	KindEmotionalField      ElementKind = "emotionalField"
	KindResearchStar        ElementKind = "researchStar"
	KindAtmosphericParticle ElementKind = "atmosphericParticle"
	KindPrecisionGrid       ElementKind = "precisionGrid"
)

// Element is the tagged union of visual primitives. Variants are produced by
// the generator and never mutated afterwards; the renderer and the metadata
// builder are the only consumers.
type Element interface {
	ElementKind() ElementKind
}

// RootBranch is a recursive child segment of an AndryRoot. Angle is absolute,
// coordinates are resolved by the renderer from the parent's endpoint.
type RootBranch struct {
	Angle     float64      `json:"angle"`
	Length    float64      `json:"length"`
	Thickness float64      `json:"thickness"`
	Children  []RootBranch `json:"children,omitempty"`
}

type AndryRoot struct {
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Angle     float64      `json:"angle"`
	Length    float64      `json:"length"`
	Thickness float64      `json:"thickness"`
	Color     string       `json:"color"`
	Branches  []RootBranch `json:"branches,omitempty"`
}

type AndryTrunk struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Color     string  `json:"color"`
}

type AndryBranch struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Angle         float64 `json:"angle"`
	Length        float64 `json:"length"`
	Thickness     float64 `json:"thickness"`
	Color         string  `json:"color"`
	EmotionalTone Emotion `json:"emotional_tone"`
}

type HealingParticle struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Size            float64 `json:"size"`
	Color           string  `json:"color"`
	PulseRate       float64 `json:"pulse_rate"`
	GrowthDirection float64 `json:"growth_direction"`
}

type HealingAura struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Radius         float64 `json:"radius"`
	Color          string  `json:"color"`
	PulseAmplitude float64 `json:"pulse_amplitude"`
}

// BezierPath is a cubic Bezier control quad.
type BezierPath struct {
	X1  float64 `json:"x1"`
	Y1  float64 `json:"y1"`
	CX1 float64 `json:"cx1"`
	CY1 float64 `json:"cy1"`
	CX2 float64 `json:"cx2"`
	CY2 float64 `json:"cy2"`
	X2  float64 `json:"x2"`
	Y2  float64 `json:"y2"`
}

type DataFlow struct {
	Path          BezierPath `json:"path"`
	Thickness     float64    `json:"thickness"`
	Color         string     `json:"color"`
	Opacity       float64    `json:"opacity"`
	FlowSpeed     float64    `json:"flow_speed"`
	ParticleCount int        `json:"particle_count"`
}

type EmotionalField struct {
	Emotion    Emotion `json:"emotion"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	Intensity  float64 `json:"intensity"`
	Color      string  `json:"color"`
	MorphSpeed float64 `json:"morph_speed"`
}

// ResearchStar's Connections are indices into the sibling star list.
type ResearchStar struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Size        float64 `json:"size"`
	Color       string  `json:"color"`
	TwinkleRate float64 `json:"twinkle_rate"`
	Connections []int   `json:"connections,omitempty"`
}

type AtmosphericParticle struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Size           float64 `json:"size"`
	Color          string  `json:"color"`
	Opacity        float64 `json:"opacity"`
	DriftSpeed     float64 `json:"drift_speed"`
	DriftDirection float64 `json:"drift_direction"`
}

type PrecisionGrid struct {
	Spacing float64 `json:"spacing"`
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color"`
}

func (AndryRoot) ElementKind() ElementKind           { return KindAndryRoot }
func (AndryTrunk) ElementKind() ElementKind          { return KindAndryTrunk }
func (AndryBranch) ElementKind() ElementKind         { return KindAndryBranch }
func (HealingParticle) ElementKind() ElementKind     { return KindHealingParticle }
func (HealingAura) ElementKind() ElementKind         { return KindHealingAura }
func (DataFlow) ElementKind() ElementKind            { return KindDataFlow }
func (EmotionalField) ElementKind() ElementKind      { return KindEmotionalField }
func (ResearchStar) ElementKind() ElementKind        { return KindResearchStar }
func (AtmosphericParticle) ElementKind() ElementKind { return KindAtmosphericParticle }
func (PrecisionGrid) ElementKind() ElementKind       { return KindPrecisionGrid }
