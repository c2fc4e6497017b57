package analysis

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/arthroviz/andry-engine/internal/model"
)

// statContextRadius is how many characters of surrounding text each
// statistical record carries.
const statContextRadius = 40

type statMatcher struct {
	typ model.StatType
	re  *regexp.Regexp
	// value converts the submatches to the record's numeric value.
	value func(groups []string) float64
}

var statMatchers = []statMatcher{
	{
		typ:   model.StatPercentage,
		re:    regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
		value: func(g []string) float64 { return parseFloat(g[1]) },
	},
	{
		typ: model.StatOutcome,
		re:  regexp.MustCompile(`(?i)\b(\d+)\s+out\s+of\s+(\d+)\b|\b(\d+)\s*/\s*(\d+)\b`),
		value: func(g []string) float64 {
			n, m := g[1], g[2]
			if n == "" {
				n, m = g[3], g[4]
			}
			den := parseFloat(m)
			if den == 0 {
				return 0
			}
			return parseFloat(n) / den
		},
	},
	{
		typ:   model.StatPValue,
		re:    regexp.MustCompile(`(?i)\bp\s*[<>=]\s*(\d*\.?\d+)`),
		value: func(g []string) float64 { return parseFloat(g[1]) },
	},
	{
		typ:   model.StatConfidenceInterval,
		re:    regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s*(?:CI\b|confidence\s+interval)`),
		value: func(g []string) float64 { return parseFloat(g[1]) },
	},
	{
		typ: model.StatFollowUp,
		re:  regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[\s-]*(months?|years?)(?:\s+of)?\s+follow[\s-]?up`),
		value: func(g []string) float64 {
			v := parseFloat(g[1])
			if strings.HasPrefix(strings.ToLower(g[2]), "year") {
				v *= 12
			}
			return v // months
		},
	},
	{
		typ:   model.StatSampleSize,
		re:    regexp.MustCompile(`(?i)\bn\s*=\s*(\d+)`),
		value: func(g []string) float64 { return parseFloat(g[1]) },
	},
}

// extractStatistics runs every matcher globally over the text and returns the
// records sorted by position of appearance.
func extractStatistics(text string) []model.Statistic {
	type positioned struct {
		stat model.Statistic
		pos  int
	}
	var found []positioned

	for _, m := range statMatchers {
		for _, loc := range m.re.FindAllStringSubmatchIndex(text, -1) {
			groups := make([]string, len(loc)/2)
			for i := range groups {
				if loc[2*i] >= 0 {
					groups[i] = text[loc[2*i]:loc[2*i+1]]
				}
			}
			value := m.value(groups)
			found = append(found, positioned{
				stat: model.Statistic{
					Type:         m.typ,
					Value:        value,
					RawText:      groups[0],
					Context:      contextAround(text, loc[0], loc[1], statContextRadius),
					Significance: statSignificance(m.typ, value),
				},
				pos: loc[0],
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	stats := make([]model.Statistic, len(found))
	for i, p := range found {
		stats[i] = p.stat
	}
	return stats
}

// statSignificance maps a record to its weight in the visualization. Every
// formula is monotonic in the intuitive direction (bigger percentages,
// smaller p-values score higher) and bounded to [0, 2].
func statSignificance(typ model.StatType, value float64) float64 {
	switch typ {
	case model.StatPercentage:
		return math.Min(value/100, 1) * 1.5
	case model.StatOutcome:
		return clamp01(value) * 1.3
	case model.StatPValue:
		return clamp01(1-math.Min(value, 1)) * 2
	case model.StatConfidenceInterval:
		return math.Min(value/100, 1) * 1.4
	case model.StatFollowUp:
		return math.Min(value/60, 1) * 1.1 // value in months, 5y caps it
	case model.StatSampleSize:
		if value < 1 {
			return 0
		}
		return math.Min(math.Log10(value)/3, 1) * 1.2 // n=1000 caps it
	}
	return 0
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
