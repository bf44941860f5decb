// Package generator samples words, phrases and name pairs from a lexicon.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/japaniel/wordgen/pkg/lexicon"
)

// Bounds for counts and synthetic word lengths.
const (
	MinCount  = 1
	MaxCount  = 100
	MinLength = 1
	MaxLength = 20
)

// ErrInvalidParameter is returned for a count or length outside its bounds.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes the offending parameter and its allowed range.
type ParamError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%d, want %d..%d", ErrInvalidParameter, e.Name, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &ParamError{Name: name, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// wordCategories are the parts of speech a vocabulary word is drawn from.
var wordCategories = []lexicon.Category{lexicon.Noun, lexicon.Adjective, lexicon.Verb}

// Generator produces lexical artifacts from a fixed Lexicon. It is not safe for
// concurrent use because the random source is not.
type Generator struct {
	lex *lexicon.Lexicon
	src lexicon.Source
}

// New returns a Generator sampling lex with src.
func New(lex *lexicon.Lexicon, src lexicon.Source) *Generator {
	return &Generator{lex: lex, src: src}
}

// Lexicon returns the lexicon the generator samples from.
func (g *Generator) Lexicon() *lexicon.Lexicon { return g.lex }

// RandomWord returns one word. For a synthetic lexicon it is length letters drawn
// independently from the alphabet; for a vocabulary lexicon it is a whole word from
// the noun, adjective and verb lists and length is ignored.
func (g *Generator) RandomWord(length int) (string, error) {
	if err := g.checkWord(length); err != nil {
		return "", err
	}
	return g.word(length)
}

// RandomWords returns count independent random words.
func (g *Generator) RandomWords(count, length int) ([]string, error) {
	if err := checkRange("count", count, MinCount, MaxCount); err != nil {
		return nil, err
	}
	if err := g.checkWord(length); err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for range count {
		w, err := g.word(length)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (g *Generator) checkWord(length int) error {
	if g.lex.Style() == lexicon.Vocabulary {
		return g.lex.Require(wordCategories...)
	}
	if err := checkRange("length", length, MinLength, MaxLength); err != nil {
		return err
	}
	return g.lex.Require(lexicon.Alphabet)
}

func (g *Generator) word(length int) (string, error) {
	if g.lex.Style() == lexicon.Vocabulary {
		return g.lex.SampleUnion(g.src, wordCategories...)
	}
	var sb strings.Builder
	for range length {
		letter, err := g.lex.Sample(g.src, lexicon.Alphabet)
		if err != nil {
			return "", err
		}
		sb.WriteString(letter)
	}
	return sb.String(), nil
}

// RandomPhrase returns wordCount phrases. Each one picks a Shape uniformly and fills
// its slots independently; repeats are allowed.
func (g *Generator) RandomPhrase(wordCount int) ([]string, error) {
	if err := checkRange("count", wordCount, MinCount, MaxCount); err != nil {
		return nil, err
	}
	if err := g.lex.Require(phraseCategories()...); err != nil {
		return nil, err
	}
	out := make([]string, 0, wordCount)
	for range wordCount {
		shape := Shapes[g.src.IntN(len(Shapes))]
		p, err := g.fill(shape.Categories())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RandomNames returns count "first last" pairs.
func (g *Generator) RandomNames(count int) ([]string, error) {
	if err := checkRange("count", count, MinCount, MaxCount); err != nil {
		return nil, err
	}
	names := []lexicon.Category{lexicon.FirstName, lexicon.LastName}
	if err := g.lex.Require(names...); err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for range count {
		n, err := g.fill(names)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (g *Generator) fill(slots []lexicon.Category) (string, error) {
	parts := make([]string, len(slots))
	for i, c := range slots {
		w, err := g.lex.Sample(g.src, c)
		if err != nil {
			return "", err
		}
		parts[i] = w
	}
	return strings.Join(parts, " "), nil
}
