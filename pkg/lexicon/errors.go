package lexicon

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCategory is returned when a category needed for sampling has no words.
	ErrEmptyCategory = errors.New("empty category")

	// ErrDictionaryUnavailable is returned when a word or name source cannot be read.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
)

// CategoryError names the category that was empty.
type CategoryError struct {
	Category Category
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%v: %s", ErrEmptyCategory, e.Category)
}

func (e *CategoryError) Unwrap() error { return ErrEmptyCategory }

// SourceError names the file that could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDictionaryUnavailable, e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error { return []error{ErrDictionaryUnavailable, e.Err} }
