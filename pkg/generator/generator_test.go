package generator_test

import (
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/wordgen/pkg/generator"
	"github.com/japaniel/wordgen/pkg/lexicon"
)

// scripted returns predetermined values, reduced modulo n.
type scripted struct {
	vals []int
	i    int
}

func (s *scripted) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func vocabulary(t *testing.T, words map[lexicon.Category][]string) *lexicon.Lexicon {
	t.Helper()
	b := lexicon.NewBuilder(lexicon.Vocabulary)
	for c, ws := range words {
		for _, w := range ws {
			b.Add(c, w)
		}
	}
	lex, err := b.Build()
	require.NoError(t, err)
	return lex
}

var lowercase = regexp.MustCompile(`^[a-z]+$`)

func TestRandomWordsShape(t *testing.T) {
	g := generator.New(lexicon.BuildStatic(), seeded(1))

	for _, count := range []int{1, 7, 100} {
		for _, length := range []int{1, 5, 20} {
			words, err := g.RandomWords(count, length)
			require.NoError(t, err)
			require.Len(t, words, count)
			for _, w := range words {
				assert.Len(t, w, length)
				assert.Regexp(t, lowercase, w)
			}
		}
	}
}

func TestRandomWordsInvalidParameters(t *testing.T) {
	g := generator.New(lexicon.BuildStatic(), seeded(1))

	tests := []struct {
		name          string
		count, length int
		param         string
	}{
		{"zero count", 0, 5, "count"},
		{"count too large", 101, 5, "count"},
		{"negative count", -3, 5, "count"},
		{"zero length", 3, 0, "length"},
		{"length too large", 3, 21, "length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := g.RandomWords(tt.count, tt.length)
			require.ErrorIs(t, err, generator.ErrInvalidParameter)
			assert.Nil(t, words)

			var pe *generator.ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.param, pe.Name)
		})
	}
}

func TestRandomWordVocabularyIgnoresLength(t *testing.T) {
	lex := vocabulary(t, map[lexicon.Category][]string{
		lexicon.Noun:      {"cat"},
		lexicon.Adjective: {"red"},
		lexicon.Verb:      {"runs"},
	})
	g := generator.New(lex, seeded(2))

	words, err := g.RandomWords(30, 0)
	require.NoError(t, err)
	for _, w := range words {
		assert.Contains(t, []string{"cat", "red", "runs"}, w)
	}

	w, err := g.RandomWord(99)
	require.NoError(t, err)
	assert.Contains(t, []string{"cat", "red", "runs"}, w)
}

func TestRandomWordVocabularyRequiresAllParts(t *testing.T) {
	lex := vocabulary(t, map[lexicon.Category][]string{
		lexicon.Noun: {"cat"},
		lexicon.Verb: {"runs"},
	})
	_, err := generator.New(lex, seeded(2)).RandomWords(3, 0)
	assert.ErrorIs(t, err, lexicon.ErrEmptyCategory)
}

func TestRandomPhraseTokensMatchShape(t *testing.T) {
	lex := lexicon.BuildStatic()
	g := generator.New(lex, seeded(3))
	in := func(c lexicon.Category, w string) bool { return slices.Contains(lex.Words(c), w) }

	phrases, err := g.RandomPhrase(100)
	require.NoError(t, err)
	require.Len(t, phrases, 100)

	lengths := map[int]int{}
	for _, p := range phrases {
		tok := strings.Split(p, " ")
		lengths[len(tok)]++
		switch len(tok) {
		case 2:
			adjNoun := in(lexicon.Adjective, tok[0]) && in(lexicon.Noun, tok[1])
			nounVerb := in(lexicon.Noun, tok[0]) && in(lexicon.Verb, tok[1])
			assert.True(t, adjNoun || nounVerb, "unexpected phrase %q", p)
		case 3:
			assert.True(t, in(lexicon.Adjective, tok[0]), p)
			assert.True(t, in(lexicon.Noun, tok[1]), p)
			assert.True(t, in(lexicon.Verb, tok[2]), p)
		default:
			t.Fatalf("phrase %q has %d tokens", p, len(tok))
		}
	}
	assert.NotZero(t, lengths[2])
	assert.NotZero(t, lengths[3])
}

func TestRandomPhraseScriptedShapes(t *testing.T) {
	g := generator.New(lexicon.BuildStatic(), &scripted{vals: []int{
		0, 1, 2,    // adjective+noun: big table
		1, 0, 3,    // noun+verb: cat thinks
		2, 4, 5, 6, // adjective+noun+verb: old friend dances
	}})

	phrases, err := g.RandomPhrase(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"big table", "cat thinks", "old friend dances"}, phrases)
}

func TestRandomPhraseEmptyCategory(t *testing.T) {
	lex := vocabulary(t, map[lexicon.Category][]string{
		lexicon.Noun: {"cat"},
		lexicon.Verb: {"runs"},
	})
	src := &scripted{vals: []int{1}}
	phrases, err := generator.New(lex, src).RandomPhrase(5)

	var catErr *lexicon.CategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, lexicon.Adjective, catErr.Category)
	assert.Nil(t, phrases)
	assert.Zero(t, src.i, "no sampling before failing")
}

func TestRandomNames(t *testing.T) {
	lex := lexicon.BuildStatic().WithNames(
		[]string{"Alexey", "Maria"},
		[]string{"Ivanov", "Petrov"},
	)
	g := generator.New(lex, &scripted{vals: []int{0, 1, 1, 0}})

	names, err := g.RandomNames(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alexey Petrov", "Maria Ivanov"}, names)
}

func TestRandomNamesTokens(t *testing.T) {
	lex := lexicon.BuildStatic()
	names, err := generator.New(lex, seeded(4)).RandomNames(50)
	require.NoError(t, err)
	require.Len(t, names, 50)
	for _, n := range names {
		tok := strings.Split(n, " ")
		require.Len(t, tok, 2)
		assert.Contains(t, lex.Words(lexicon.FirstName), tok[0])
		assert.Contains(t, lex.Words(lexicon.LastName), tok[1])
	}
}

func TestRandomNamesInvalidCount(t *testing.T) {
	src := &scripted{vals: []int{0}}
	_, err := generator.New(lexicon.BuildStatic(), src).RandomNames(0)
	assert.ErrorIs(t, err, generator.ErrInvalidParameter)
	assert.Zero(t, src.i)
}

func TestSeededRunsReproduce(t *testing.T) {
	run := func() ([]string, []string, []string) {
		g := generator.New(lexicon.BuildStatic(), seeded(42))
		words, err := g.RandomWords(10, 8)
		require.NoError(t, err)
		phrases, err := g.RandomPhrase(10)
		require.NoError(t, err)
		names, err := g.RandomNames(10)
		require.NoError(t, err)
		return words, phrases, names
	}

	w1, p1, n1 := run()
	w2, p2, n2 := run()
	assert.Equal(t, w1, w2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, n1, n2)
}

func TestShapeCategories(t *testing.T) {
	assert.Equal(t, []lexicon.Category{lexicon.Adjective, lexicon.Noun}, generator.AdjectiveNoun.Categories())
	assert.Equal(t, []lexicon.Category{lexicon.Noun, lexicon.Verb}, generator.NounVerb.Categories())
	assert.Equal(t, []lexicon.Category{lexicon.Adjective, lexicon.Noun, lexicon.Verb}, generator.AdjectiveNounVerb.Categories())
	assert.Len(t, generator.Shapes, 3)
}
