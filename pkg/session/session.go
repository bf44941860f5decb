// Package session is the entry point a user interface calls: it validates a request,
// runs the matching generator operation and records the outcome in the session
// history.
package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/japaniel/wordgen/pkg/generator"
	"github.com/japaniel/wordgen/pkg/history"
	"github.com/japaniel/wordgen/pkg/lexicon"
)

// Mode selects what a request generates.
type Mode int

const (
	Word Mode = iota
	Phrase
	Name
)

var modeNames = map[Mode]string{
	Word:   "word",
	Phrase: "phrase",
	Name:   "name",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts the String form of a Mode, with an optional plural "s".
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", generator.ErrInvalidParameter, s)
}

// Request is one generation call. Length only applies to Word requests against a
// synthetic lexicon.
type Request struct {
	Mode   Mode
	Count  int
	Length int
}

// Result holds the generated items in generation order and the line recorded in
// history for them.
type Result struct {
	Request Request
	Items   []string
	Summary string
}

// Session owns the generator and history of one running application.
type Session struct {
	mu      sync.Mutex
	gen     *generator.Generator
	history *history.History
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger logs every request at debug level and failures at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithHistory uses h instead of a fresh history.
func WithHistory(h *history.History) Option {
	return func(s *Session) {
		if h != nil {
			s.history = h
		}
	}
}

// New creates a Session over lex using src for randomness.
func New(lex *lexicon.Lexicon, src lexicon.Source, opts ...Option) *Session {
	s := &Session{
		gen:     generator.New(lex, src),
		history: history.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lexicon returns the lexicon requests are served from.
func (s *Session) Lexicon() *lexicon.Lexicon { return s.gen.Lexicon() }

// Generate serves req and records its summary. A failed request leaves the history
// untouched.
func (s *Session) Generate(req Request) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.run(req)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("generation failed", slog.String("mode", req.Mode.String()), slog.Any("error", err))
		}
		return Result{}, err
	}

	summary := s.summarize(req, items)
	s.history.Record(summary)
	if s.logger != nil {
		s.logger.Debug("generated",
			slog.String("mode", req.Mode.String()),
			slog.Int("count", req.Count),
			slog.Int("items", len(items)),
		)
	}
	return Result{Request: req, Items: items, Summary: summary}, nil
}

func (s *Session) run(req Request) ([]string, error) {
	switch req.Mode {
	case Word:
		return s.gen.RandomWords(req.Count, req.Length)
	case Phrase:
		return s.gen.RandomPhrase(req.Count)
	case Name:
		return s.gen.RandomNames(req.Count)
	}
	return nil, fmt.Errorf("%w: unknown mode %d", generator.ErrInvalidParameter, int(req.Mode))
}

func (s *Session) summarize(req Request, items []string) string {
	var label string
	switch req.Mode {
	case Word:
		if s.gen.Lexicon().Style() == lexicon.Synthetic {
			label = fmt.Sprintf("Random words (length %d, %d pcs.)", req.Length, req.Count)
		} else {
			label = fmt.Sprintf("Random words (%d pcs.)", req.Count)
		}
	case Phrase:
		label = fmt.Sprintf("Phrases (%d pcs.)", req.Count)
	case Name:
		label = fmt.Sprintf("Random names (%d pcs.)", req.Count)
	}
	return label + ": " + strings.Join(items, ", ")
}

// ExportHistory writes the history to path, or history.DefaultExportPath when path
// is empty.
func (s *Session) ExportHistory(path string) error {
	if path == "" {
		path = history.DefaultExportPath
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.history.Export(path); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("history exported", slog.String("path", path), slog.Int("entries", s.history.Len()))
	}
	return nil
}

// History returns the recorded summaries in order.
func (s *Session) History() []string { return s.history.Entries() }
