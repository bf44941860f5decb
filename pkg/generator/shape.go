package generator

import "github.com/japaniel/wordgen/pkg/lexicon"

// Shape is the category sequence of a phrase.
type Shape int

const (
	AdjectiveNoun Shape = iota
	NounVerb
	AdjectiveNounVerb
)

// Shapes lists every phrase shape; RandomPhrase picks among them uniformly.
var Shapes = []Shape{AdjectiveNoun, NounVerb, AdjectiveNounVerb}

// Categories returns the slot categories of s, in phrase order.
func (s Shape) Categories() []lexicon.Category {
	switch s {
	case AdjectiveNoun:
		return []lexicon.Category{lexicon.Adjective, lexicon.Noun}
	case NounVerb:
		return []lexicon.Category{lexicon.Noun, lexicon.Verb}
	case AdjectiveNounVerb:
		return []lexicon.Category{lexicon.Adjective, lexicon.Noun, lexicon.Verb}
	}
	return nil
}

func (s Shape) String() string {
	switch s {
	case AdjectiveNoun:
		return "adjective+noun"
	case NounVerb:
		return "noun+verb"
	case AdjectiveNounVerb:
		return "adjective+noun+verb"
	}
	return "unknown"
}

// phraseCategories is every category any shape may sample.
func phraseCategories() []lexicon.Category {
	seen := map[lexicon.Category]bool{}
	var out []lexicon.Category
	for _, s := range Shapes {
		for _, c := range s.Categories() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
