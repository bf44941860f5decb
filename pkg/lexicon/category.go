package lexicon

import "fmt"

// Category is a part-of-speech or name-role bucket of a Lexicon.
type Category int

const (
	Noun Category = iota
	Adjective
	Verb
	FirstName
	LastName
	Alphabet
)

// Categories lists every category in declaration order.
var Categories = []Category{Noun, Adjective, Verb, FirstName, LastName, Alphabet}

var categoryNames = map[Category]string{
	Noun:      "noun",
	Adjective: "adjective",
	Verb:      "verb",
	FirstName: "first_name",
	LastName:  "last_name",
	Alphabet:  "alphabet",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
