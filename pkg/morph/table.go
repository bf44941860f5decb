package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/japaniel/wordgen/pkg/lexicon"
)

// Table classifies tokens by looking them up in a tagged word list. Each line holds a
// word, a tab, and an OpenCorpora-style tag such as "NOUN,anim,femn Name":
//
//	NOUN          noun (or first/last name with the Name/Surn grammeme)
//	ADJF          adjective
//	VERB, INFN    verb
//
// Lines with other parts of speech are ignored.
type Table struct {
	words map[string]lexicon.Category
}

// LoadTable reads a tag table from path. Words are lower-cased for lang so they match
// tokens normalized by the lexicon builder.
func LoadTable(path string, lang language.Tag) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &lexicon.SourceError{Path: path, Err: err}
	}
	defer f.Close()
	t, err := ReadTable(f, lang)
	if err != nil {
		return nil, &lexicon.SourceError{Path: path, Err: err}
	}
	return t, nil
}

// ReadTable parses a tag table from r.
func ReadTable(r io.Reader, lang language.Tag) (*Table, error) {
	caser := cases.Lower(lang)
	t := &Table{words: make(map[string]lexicon.Category)}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, tags, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab between word and tag", line)
		}
		c, ok := parseTag(tags)
		if !ok {
			continue
		}
		key := caser.String(strings.TrimSpace(word))
		if _, dup := t.words[key]; !dup {
			t.words[key] = c
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseTag(tag string) (lexicon.Category, bool) {
	grammemes := strings.FieldsFunc(tag, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(grammemes) == 0 {
		return 0, false
	}
	has := func(g string) bool {
		for _, x := range grammemes[1:] {
			if x == g {
				return true
			}
		}
		return false
	}
	switch grammemes[0] {
	case "NOUN":
		switch {
		case has("Name"):
			return lexicon.FirstName, true
		case has("Surn"):
			return lexicon.LastName, true
		}
		return lexicon.Noun, true
	case "ADJF":
		return lexicon.Adjective, true
	case "VERB", "INFN":
		return lexicon.Verb, true
	}
	return 0, false
}

// Len returns the number of tagged words.
func (t *Table) Len() int { return len(t.words) }

// Classify looks token up in the table.
func (t *Table) Classify(token string) (lexicon.Category, bool) {
	c, ok := t.words[token]
	return c, ok
}

// Segment splits text on anything that is not a letter, mark or inner hyphen.
func (t *Table) Segment(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r) && r != '-'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "-"); f != "" {
			out = append(out, f)
		}
	}
	return out
}
