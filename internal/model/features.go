package model

// TermStat records how often a single medical term occurred and how much it
// counts for. Significance is always Count × Weight.
type TermStat struct {
	Count        int     `json:"count"`
	Weight       float64 `json:"weight"`
	Significance float64 `json:"significance"`
}

// StatType enumerates the statistical patterns the extractor recognizes.
type StatType string

const (
	StatPercentage         StatType = "percentage"
	StatOutcome            StatType = "outcome"
	StatPValue             StatType = "pValue"
	StatConfidenceInterval StatType = "confidenceInterval"
	StatFollowUp           StatType = "followUp"
	StatSampleSize         StatType = "sampleSize"
)

// Statistic is one statistical mention found in the text, in order of
// appearance. Significance is bounded to [0, 2].
type Statistic struct {
	Type         StatType `json:"type"`
	Value        float64  `json:"value"`
	RawText      string   `json:"raw_text"`
	Context      string   `json:"context"`
	Significance float64  `json:"significance"`
}

// Citation is one research citation reference, in order of appearance.
type Citation struct {
	Importance float64 `json:"importance"`
	Impact     float64 `json:"impact"`
}

// ContentSection is one structural section of the article. When the document
// carries no explicit headings, a per-subspecialty default list is used.
type ContentSection struct {
	Title         string  `json:"title"`
	Importance    float64 `json:"importance"`
	Complexity    float64 `json:"complexity"`
	EmotionalTone Emotion `json:"emotional_tone"`
}

// ArticleFeatures is the immutable feature bundle the extractor produces and
// the generator consumes.
type ArticleFeatures struct {
	WordCount         int                            `json:"word_count"`
	ParagraphCount    int                            `json:"paragraph_count"`
	MedicalTerms      map[string]map[string]TermStat `json:"medical_terms"`
	StatisticalData   []Statistic                    `json:"statistical_data"`
	ResearchCitations []Citation                     `json:"research_citations"`
	ContentSections   []ContentSection               `json:"content_sections"`
	EvidenceStrength  float64                        `json:"evidence_strength"`
	TechnicalDensity  float64                        `json:"technical_density"`
	CertaintyLevel    float64                        `json:"certainty_level"`
	ReadabilityScore  float64                        `json:"readability_score"`
}

// CategorySignificance sums significance over every term in a category.
func (f *ArticleFeatures) CategorySignificance(category string) float64 {
	total := 0.0
	for _, stat := range f.MedicalTerms[category] {
		total += stat.Significance
	}
	return total
}
