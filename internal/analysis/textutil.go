package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordPattern compiles a case-insensitive whole-word matcher for a vocabulary
// term. Hyphenated terms match as written.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// compileTerms builds one matcher per term.
func compileTerms(terms []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		patterns[term] = wordPattern(term)
	}
	return patterns
}

// countMatches sums occurrence counts over a compiled term set.
func countMatches(text string, patterns map[string]*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}

// contextAround returns a trimmed snippet surrounding [start,end). The bounds
// widen to rune boundaries so the snippet never slices a multi-byte character.
func contextAround(text string, start, end, radius int) string {
	from := start - radius
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := end + radius
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return strings.TrimSpace(text[from:to])
}

// splitParagraphs returns the non-empty blank-line-separated blocks.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range regexp.MustCompile(`\n\s*\n`).Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
