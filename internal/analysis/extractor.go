// Package analysis turns raw article text into the feature bundle the
// generator consumes: medical term counts, statistical mentions, citations,
// section structure, the emotional journey and the subspecialty.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

var (
	markdownHeading = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	htmlHeading     = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	htmlTag         = regexp.MustCompile(`(?s)<[^>]*>`)
	citationMarker  = regexp.MustCompile(`\[\d+(?:\s*[,–-]\s*\d+)*\]|(?i)\bet\s+al\.?|\((?:19|20)\d{2}\)`)
	sentenceEnd     = regexp.MustCompile(`[.!?]+`)
	vowelGroup      = regexp.MustCompile(`(?i)[aeiouy]+`)
)

// Extractor computes ArticleFeatures from raw text. It is stateless apart
// from its precompiled vocabulary matchers and safe for concurrent use.
type Extractor struct {
	termPatterns        map[string]map[string]*regexp.Regexp
	technicalPatterns   map[string]*regexp.Regexp
	evidencePatterns    map[string]*regexp.Regexp
	uncertaintyPatterns map[string]*regexp.Regexp
	tonePatterns        map[model.Emotion]map[string]*regexp.Regexp
}

// NewExtractor compiles the fixed vocabularies once.
func NewExtractor() *Extractor {
	termPatterns := make(map[string]map[string]*regexp.Regexp)
	for category, spec := range vocab.MedicalCategories() {
		termPatterns[category] = compileTerms(spec.Terms)
	}

	tonePatterns := make(map[model.Emotion]map[string]*regexp.Regexp)
	for tone, markers := range vocab.SectionToneMarkers() {
		tonePatterns[tone] = compileTerms(markers)
	}

	return &Extractor{
		termPatterns:        termPatterns,
		technicalPatterns:   compileTerms(vocab.TechnicalTerms()),
		evidencePatterns:    compileTerms(vocab.EvidenceTerms()),
		uncertaintyPatterns: compileTerms(vocab.UncertaintyTerms()),
		tonePatterns:        tonePatterns,
	}
}

// ExtractFeatures builds the full feature bundle. The subspecialty must
// already be classified: it selects the default section list when the
// document carries no explicit structure. Empty input yields a degenerate
// bundle with neutral defaults, never an error.
func (e *Extractor) ExtractFeatures(text string, subspecialty model.Subspecialty) model.ArticleFeatures {
	plain := strings.TrimSpace(htmlTag.ReplaceAllString(text, " "))
	if plain == "" {
		return model.ArticleFeatures{
			MedicalTerms:     map[string]map[string]model.TermStat{},
			EvidenceStrength: 0.5,
			CertaintyLevel:   0.5,
			ContentSections:  vocab.DefaultSections(subspecialty),
		}
	}

	evidenceCount := countMatches(plain, e.evidencePatterns)
	technicalCount := countMatches(plain, e.technicalPatterns) + e.medicalTermCount(plain)
	uncertaintyCount := countMatches(plain, e.uncertaintyPatterns)

	sections := e.extractSections(text)
	if len(sections) == 0 {
		sections = vocab.DefaultSections(subspecialty)
	}

	return model.ArticleFeatures{
		WordCount:         len(strings.Fields(plain)),
		ParagraphCount:    len(splitParagraphs(text)),
		MedicalTerms:      e.extractMedicalTerms(plain),
		StatisticalData:   extractStatistics(plain),
		ResearchCitations: extractCitations(plain),
		ContentSections:   sections,
		EvidenceStrength:  minf(float64(evidenceCount)/10, 1),
		TechnicalDensity:  minf(float64(technicalCount)/100, 1),
		CertaintyLevel:    maxf(0, 1-float64(uncertaintyCount)/20),
		ReadabilityScore:  readability(plain),
	}
}

func (e *Extractor) extractMedicalTerms(text string) map[string]map[string]model.TermStat {
	result := make(map[string]map[string]model.TermStat, len(e.termPatterns))
	for category, patterns := range e.termPatterns {
		weight := vocab.MedicalCategories()[category].Weight
		terms := make(map[string]model.TermStat)
		for term, re := range patterns {
			count := len(re.FindAllStringIndex(text, -1))
			if count == 0 {
				continue
			}
			terms[term] = model.TermStat{
				Count:        count,
				Weight:       weight,
				Significance: float64(count) * weight,
			}
		}
		result[category] = terms
	}
	return result
}

func (e *Extractor) medicalTermCount(text string) int {
	total := 0
	for _, patterns := range e.termPatterns {
		total += countMatches(text, patterns)
	}
	return total
}

// extractSections walks explicit headings (markdown or HTML) and scores each
// section from heading depth and body length. Tone is the dominant section
// tone vocabulary in the body, hope when nothing matches.
func (e *Extractor) extractSections(text string) []model.ContentSection {
	type heading struct {
		title string
		depth int
		start int
		end   int
	}
	var headings []heading

	for _, loc := range markdownHeading.FindAllStringSubmatchIndex(text, -1) {
		headings = append(headings, heading{
			title: strings.TrimSpace(text[loc[4]:loc[5]]),
			depth: loc[3] - loc[2],
			start: loc[0],
			end:   loc[1],
		})
	}
	for _, loc := range htmlHeading.FindAllStringSubmatchIndex(text, -1) {
		depth := int(text[loc[2]] - '0')
		title := strings.TrimSpace(htmlTag.ReplaceAllString(text[loc[4]:loc[5]], ""))
		headings = append(headings, heading{title: title, depth: depth, start: loc[0], end: loc[1]})
	}
	if len(headings) == 0 {
		return nil
	}

	// Mixed markup: restore document order.
	sort.SliceStable(headings, func(i, j int) bool { return headings[i].start < headings[j].start })

	sections := make([]model.ContentSection, 0, len(headings))
	for i, h := range headings {
		bodyEnd := len(text)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1].start
		}
		body := text[h.end:bodyEnd]

		importance := 1.1 - 0.15*float64(h.depth)
		if importance < 0.3 {
			importance = 0.3
		}
		if importance > 1 {
			importance = 1
		}

		sections = append(sections, model.ContentSection{
			Title:         h.title,
			Importance:    importance,
			Complexity:    minf(float64(len(body))/2000, 1),
			EmotionalTone: e.sectionTone(body),
		})
	}
	return sections
}

// sectionTone picks the dominant tone among the six tone vocabularies.
// Journey dimensions are checked in declaration order, then hope; ties keep
// the earlier winner.
func (e *Extractor) sectionTone(body string) model.Emotion {
	best := model.EmotionHope
	bestCount := 0
	order := append(append([]model.Emotion{}, model.JourneyEmotions...), model.EmotionHope)
	for _, tone := range order {
		count := countMatches(body, e.tonePatterns[tone])
		if count > bestCount {
			best = tone
			bestCount = count
		}
	}
	return best
}

// extractCitations finds citation markers in order of appearance. Importance
// decays with position; impact follows importance on a compressed scale.
func extractCitations(text string) []model.Citation {
	locs := citationMarker.FindAllStringIndex(text, -1)
	citations := make([]model.Citation, 0, len(locs))
	for i := range locs {
		importance := 1 - 0.05*float64(i)
		if importance < 0.2 {
			importance = 0.2
		}
		citations = append(citations, model.Citation{
			Importance: importance,
			Impact:     clamp01(0.4 + 0.5*importance),
		})
	}
	return citations
}

// readability is a clamped Flesch-style reading ease, scaled to [0, 1].
func readability(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	sentences := len(sentenceEnd.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		s := len(vowelGroup.FindAllString(w, -1))
		if s == 0 {
			s = 1
		}
		syllables += s
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	flesch := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return clamp01(flesch / 100)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
