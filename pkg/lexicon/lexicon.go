// Package lexicon holds the categorized vocabulary that words, phrases and names are
// sampled from.
//
// A Lexicon is immutable once built. It is produced by BuildStatic for the small
// built-in tables, by BuildFromDictionary or BuildFromTokens for vocabulary filtered
// through a Morphology, or by a Builder when loading a stored snapshot.
package lexicon

import (
	"slices"
	"strings"
)

// Style selects what a single "random word" means for a Lexicon.
type Style int

const (
	// Synthetic lexicons produce letter strings drawn from the Alphabet category.
	Synthetic Style = iota
	// Vocabulary lexicons produce real words drawn from nouns, adjectives and verbs.
	Vocabulary
)

func (s Style) String() string {
	if s == Vocabulary {
		return "vocabulary"
	}
	return "synthetic"
}

// Source is the pseudo-random source used for sampling. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Morphology classifies a single token into a category. Implementations must be safe
// for concurrent use.
type Morphology interface {
	Classify(token string) (Category, bool)
}

// Lexicon maps each Category to an ordered, duplicate-free list of words.
type Lexicon struct {
	style Style
	words map[Category][]string
}

// Style reports how random words are produced from this lexicon.
func (l *Lexicon) Style() Style { return l.style }

// Words returns a copy of the words in category c, in insertion order.
func (l *Lexicon) Words(c Category) []string {
	return slices.Clone(l.words[c])
}

// Size returns the number of words in category c.
func (l *Lexicon) Size(c Category) int { return len(l.words[c]) }

// Require returns a CategoryError for the first category in cats that is empty.
func (l *Lexicon) Require(cats ...Category) error {
	for _, c := range cats {
		if len(l.words[c]) == 0 {
			return &CategoryError{Category: c}
		}
	}
	return nil
}

// Sample returns a uniformly chosen word from category c.
func (l *Lexicon) Sample(src Source, c Category) (string, error) {
	words := l.words[c]
	if len(words) == 0 {
		return "", &CategoryError{Category: c}
	}
	return words[src.IntN(len(words))], nil
}

// SampleUnion returns a word chosen uniformly from the concatenation of cats. It
// fails if any of them is empty.
func (l *Lexicon) SampleUnion(src Source, cats ...Category) (string, error) {
	if err := l.Require(cats...); err != nil {
		return "", err
	}
	total := 0
	for _, c := range cats {
		total += len(l.words[c])
	}
	i := src.IntN(total)
	for _, c := range cats {
		if i < len(l.words[c]) {
			return l.words[c][i], nil
		}
		i -= len(l.words[c])
	}
	// unreachable: i < total
	return "", &CategoryError{Category: cats[len(cats)-1]}
}

// WithNames returns a copy of l whose FirstName and LastName categories are replaced
// by the given lists, deduplicated in order.
func (l *Lexicon) WithNames(first, last []string) *Lexicon {
	b := NewBuilder(l.style)
	for c, words := range l.words {
		if c == FirstName || c == LastName {
			continue
		}
		for _, w := range words {
			b.Add(c, w)
		}
	}
	for _, w := range first {
		b.Add(FirstName, w)
	}
	for _, w := range last {
		b.Add(LastName, w)
	}
	out, _ := b.Build()
	return out
}

// Builder accumulates words per category, dropping blanks and duplicates.
type Builder struct {
	style Style
	words map[Category][]string
	seen  map[Category]map[string]struct{}
}

// NewBuilder creates a Builder for a lexicon of the given style.
func NewBuilder(style Style) *Builder {
	return &Builder{
		style: style,
		words: make(map[Category][]string),
		seen:  make(map[Category]map[string]struct{}),
	}
}

// Add appends word to category c. It reports whether the word was new.
func (b *Builder) Add(c Category, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	set, ok := b.seen[c]
	if !ok {
		set = make(map[string]struct{})
		b.seen[c] = set
	}
	if _, dup := set[word]; dup {
		return false
	}
	set[word] = struct{}{}
	b.words[c] = append(b.words[c], word)
	return true
}

// Len returns the number of words collected for category c so far.
func (b *Builder) Len(c Category) int { return len(b.words[c]) }

// Build freezes the collected words. The Alphabet category falls back to the Latin
// lowercase letters when nothing was added to it. Build fails with a CategoryError
// when any of the required categories is empty.
func (b *Builder) Build(required ...Category) (*Lexicon, error) {
	words := make(map[Category][]string, len(b.words)+1)
	for c, ws := range b.words {
		words[c] = slices.Clone(ws)
	}
	if len(words[Alphabet]) == 0 {
		words[Alphabet] = latinAlphabet()
	}
	lex := &Lexicon{style: b.style, words: words}
	if err := lex.Require(required...); err != nil {
		return nil, err
	}
	return lex, nil
}

func latinAlphabet() []string {
	letters := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, string(r))
	}
	return letters
}
