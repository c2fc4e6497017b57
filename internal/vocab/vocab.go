// Package vocab holds the fixed vocabularies and styling tables the pipeline
// runs on. Everything is embedded at build time so the core stays free of
// filesystem access.
package vocab

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthroviz/andry-engine/internal/model"
)

//go:embed medical_terms.yaml
var medicalTermsYAML []byte

//go:embed emotion_markers.yaml
var emotionMarkersYAML []byte

//go:embed subspecialties.yaml
var subspecialtiesYAML []byte

//go:embed palettes.yaml
var palettesYAML []byte

// Category is one medical term category with its fixed weight.
type Category struct {
	Weight float64  `yaml:"weight"`
	Terms  []string `yaml:"terms"`
}

// Style is the backdrop styling a subspecialty selects.
type Style struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Accent string `yaml:"accent"`
}

type colorPair struct {
	Base  string `yaml:"base"`
	Light string `yaml:"light"`
}

type sectionSpec struct {
	Title      string  `yaml:"title"`
	Importance float64 `yaml:"importance"`
	Complexity float64 `yaml:"complexity"`
	Tone       string  `yaml:"tone"`
}

type subspecialtySpec struct {
	Name     string        `yaml:"name"`
	Keywords []string      `yaml:"keywords"`
	Sections []sectionSpec `yaml:"sections"`
}

type tables struct {
	categories    map[string]Category
	technical     []string
	evidence      []string
	uncertainty   []string
	journey       map[model.Emotion][]string
	hope          []string
	keywords      map[model.Subspecialty][]string
	sections      map[model.Subspecialty][]model.ContentSection
	emotionColors map[model.Emotion]colorPair
	styles        map[model.Subspecialty]Style
}

var loaded tables

func init() {
	if err := load(); err != nil {
		panic(fmt.Sprintf("vocab: %v", err))
	}
}

func load() error {
	var medical struct {
		Categories map[string]Category `yaml:"categories"`
		Heuristics struct {
			Technical   []string `yaml:"technical"`
			Evidence    []string `yaml:"evidence"`
			Uncertainty []string `yaml:"uncertainty"`
		} `yaml:"heuristics"`
	}
	if err := yaml.Unmarshal(medicalTermsYAML, &medical); err != nil {
		return fmt.Errorf("parsing medical_terms.yaml: %w", err)
	}

	var emotions struct {
		Journey map[string][]string `yaml:"journey"`
		Hope    []string            `yaml:"hope"`
	}
	if err := yaml.Unmarshal(emotionMarkersYAML, &emotions); err != nil {
		return fmt.Errorf("parsing emotion_markers.yaml: %w", err)
	}

	var subs struct {
		Subspecialties []subspecialtySpec `yaml:"subspecialties"`
	}
	if err := yaml.Unmarshal(subspecialtiesYAML, &subs); err != nil {
		return fmt.Errorf("parsing subspecialties.yaml: %w", err)
	}

	var palettes struct {
		Emotions       map[string]colorPair `yaml:"emotions"`
		Subspecialties map[string]Style     `yaml:"subspecialties"`
	}
	if err := yaml.Unmarshal(palettesYAML, &palettes); err != nil {
		return fmt.Errorf("parsing palettes.yaml: %w", err)
	}

	t := tables{
		categories:    medical.Categories,
		technical:     medical.Heuristics.Technical,
		evidence:      medical.Heuristics.Evidence,
		uncertainty:   medical.Heuristics.Uncertainty,
		journey:       make(map[model.Emotion][]string, len(emotions.Journey)),
		hope:          emotions.Hope,
		keywords:      make(map[model.Subspecialty][]string, len(subs.Subspecialties)),
		sections:      make(map[model.Subspecialty][]model.ContentSection, len(subs.Subspecialties)),
		emotionColors: make(map[model.Emotion]colorPair, len(palettes.Emotions)),
		styles:        make(map[model.Subspecialty]Style, len(palettes.Subspecialties)),
	}

	for name, markers := range emotions.Journey {
		t.journey[model.Emotion(name)] = markers
	}
	for _, e := range model.JourneyEmotions {
		if len(t.journey[e]) == 0 {
			return fmt.Errorf("emotion_markers.yaml: no markers for journey dimension %q", e)
		}
	}

	for _, spec := range subs.Subspecialties {
		s := model.Subspecialty(spec.Name)
		if !s.Valid() {
			return fmt.Errorf("subspecialties.yaml: unknown subspecialty %q", spec.Name)
		}
		t.keywords[s] = spec.Keywords
		sections := make([]model.ContentSection, 0, len(spec.Sections))
		for _, sec := range spec.Sections {
			sections = append(sections, model.ContentSection{
				Title:         sec.Title,
				Importance:    sec.Importance,
				Complexity:    sec.Complexity,
				EmotionalTone: model.Emotion(sec.Tone),
			})
		}
		t.sections[s] = sections
	}
	for _, s := range model.Subspecialties {
		if len(t.keywords[s]) == 0 {
			return fmt.Errorf("subspecialties.yaml: no keywords for %q", s)
		}
	}

	for name, pair := range palettes.Emotions {
		t.emotionColors[model.Emotion(name)] = pair
	}
	for name, style := range palettes.Subspecialties {
		t.styles[model.Subspecialty(name)] = style
	}

	loaded = t
	return nil
}

// MedicalCategories returns the fixed category → weight/terms table.
func MedicalCategories() map[string]Category { return loaded.categories }

// TechnicalTerms backs the technical-density heuristic.
func TechnicalTerms() []string { return loaded.technical }

// EvidenceTerms backs the evidence-strength heuristic.
func EvidenceTerms() []string { return loaded.evidence }

// UncertaintyTerms backs the certainty-level heuristic.
func UncertaintyTerms() []string { return loaded.uncertainty }

// JourneyMarkers returns the marker list for one of the five journey
// dimensions. Hope has no journey markers and returns nil.
func JourneyMarkers(e model.Emotion) []string { return loaded.journey[e] }

// SectionToneMarkers returns the six-tone marker table used for section
// emotional tone detection: the five journey lists plus hope.
func SectionToneMarkers() map[model.Emotion][]string {
	tones := make(map[model.Emotion][]string, len(loaded.journey)+1)
	for e, markers := range loaded.journey {
		tones[e] = markers
	}
	tones[model.EmotionHope] = loaded.hope
	return tones
}

// SubspecialtyKeywords returns the classifier keyword list for s.
func SubspecialtyKeywords(s model.Subspecialty) []string { return loaded.keywords[s] }

// DefaultSections returns a copy of the default section list substituted when
// a document has no explicit structure.
func DefaultSections(s model.Subspecialty) []model.ContentSection {
	src := loaded.sections[s]
	out := make([]model.ContentSection, len(src))
	copy(out, src)
	return out
}

// EmotionColor returns the base hex color for an emotion key.
func EmotionColor(e model.Emotion) string {
	if pair, ok := loaded.emotionColors[e]; ok {
		return pair.Base
	}
	return loaded.emotionColors[model.EmotionConfidence].Base
}

// EmotionLight returns the light variant for an emotion key.
func EmotionLight(e model.Emotion) string {
	if pair, ok := loaded.emotionColors[e]; ok {
		return pair.Light
	}
	return loaded.emotionColors[model.EmotionConfidence].Light
}

// SubspecialtyStyle returns the backdrop styling for s.
func SubspecialtyStyle(s model.Subspecialty) Style {
	if style, ok := loaded.styles[s]; ok {
		return style
	}
	return loaded.styles[model.SportsMedicine]
}
