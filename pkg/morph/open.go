package morph

import (
	"fmt"

	"golang.org/x/text/language"
)

// Names accepted by Open.
const (
	KindKagome = "kagome"
	KindTable  = "table"
)

// Open returns the analyzer named kind. The table analyzer reads tagsPath.
func Open(kind, tagsPath string, lang language.Tag) (Analyzer, error) {
	switch kind {
	case KindKagome, "":
		return NewKagome()
	case KindTable:
		if tagsPath == "" {
			return nil, fmt.Errorf("table analyzer needs a tag file")
		}
		return LoadTable(tagsPath, lang)
	}
	return nil, fmt.Errorf("unknown analyzer %q", kind)
}
