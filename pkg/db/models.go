package db

import "time"

// Source records where an imported lexicon came from.
type Source struct {
	ID         int64
	SourceType string
	Path       string
	AddedAt    time.Time
}

// Source types written by the importer.
const (
	SourceDictionary = "dictionary"
	SourceHTML       = "html"
	SourceStatic     = "static"
)
