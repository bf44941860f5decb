// Package morph provides part-of-speech classifiers for building dictionary lexicons
// and helpers that turn documents into candidate tokens.
package morph

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/wordgen/pkg/lexicon"
)

// Analyzer classifies single tokens and segments free text into tokens.
type Analyzer interface {
	lexicon.Morphology
	Segment(text string) []string
}

// Kagome classifies Japanese tokens with the IPA dictionary.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome loads the IPA dictionary and creates a tokenizer. The tokenizer is safe
// for concurrent use.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{t: t}, nil
}

// IPA feature layout:
// 0: part of speech, 1-3: sub-categories, 4: conjugation type, 5: conjugation form,
// 6: base form, 7: reading, 8: pronunciation.
const (
	featPOS  = 0
	featSub1 = 1
	featSub2 = 2
	featSub3 = 3
	featBase = 6
)

func feature(f []string, i int) string {
	if len(f) > i {
		return f[i]
	}
	return ""
}

// Classify maps token to a category when the tokenizer reads it as exactly one
// content word. Compounds and function words are rejected.
func (k *Kagome) Classify(token string) (lexicon.Category, bool) {
	var found []tokenizer.Token
	for _, t := range k.t.Tokenize(token) {
		if t.Class == tokenizer.DUMMY || strings.TrimSpace(t.Surface) == "" {
			continue
		}
		found = append(found, t)
	}
	if len(found) != 1 || found[0].Surface != token {
		return 0, false
	}
	return categorize(found[0].Features())
}

func categorize(f []string) (lexicon.Category, bool) {
	switch feature(f, featPOS) {
	case "名詞":
		switch feature(f, featSub1) {
		case "固有名詞":
			if feature(f, featSub2) != "人名" {
				return 0, false
			}
			switch feature(f, featSub3) {
			case "名":
				return lexicon.FirstName, true
			case "姓":
				return lexicon.LastName, true
			}
			return 0, false
		case "数", "代名詞", "非自立", "接尾", "特殊":
			return 0, false
		}
		return lexicon.Noun, true
	case "形容詞":
		if feature(f, featSub1) == "自立" {
			return lexicon.Adjective, true
		}
	case "動詞":
		if feature(f, featSub1) == "自立" {
			return lexicon.Verb, true
		}
	}
	return 0, false
}

// Segment returns the base forms of the content words in text, in reading order.
func (k *Kagome) Segment(text string) []string {
	var out []string
	for _, t := range k.t.Tokenize(text) {
		if t.Class == tokenizer.DUMMY {
			continue
		}
		f := t.Features()
		if _, ok := categorize(f); !ok {
			continue
		}
		base := t.Surface
		if b := feature(f, featBase); b != "" && b != "*" {
			base = b
		}
		out = append(out, base)
	}
	return out
}
