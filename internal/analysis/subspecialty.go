package analysis

import (
	"regexp"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/vocab"
)

// Classifier assigns an article to one subspecialty by summed whole-word
// keyword frequency.
type Classifier struct {
	keywords map[model.Subspecialty]map[string]*regexp.Regexp
}

func NewClassifier() *Classifier {
	keywords := make(map[model.Subspecialty]map[string]*regexp.Regexp, len(model.Subspecialties))
	for _, s := range model.Subspecialties {
		keywords[s] = compileTerms(vocab.SubspecialtyKeywords(s))
	}
	return &Classifier{keywords: keywords}
}

// Classify scores every subspecialty and picks the max. Ties break in the
// canonical declaration order; a zero score everywhere yields sportsMedicine.
func (c *Classifier) Classify(text string) model.Subspecialty {
	best := model.SportsMedicine
	bestScore := 0
	for _, s := range model.Subspecialties {
		if score := countMatches(text, c.keywords[s]); score > bestScore {
			best = s
			bestScore = score
		}
	}
	return best
}
