package lexicon

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/japaniel/wordgen/pkg/ingest"
)

const (
	defaultChunkSize = 2048
	maxLineSize      = 1 << 20
)

// DefaultRequired are the categories a dictionary lexicon must fill for phrases and
// vocabulary words to work.
var DefaultRequired = []Category{Noun, Adjective, Verb}

type buildConfig struct {
	workers   int
	chunkSize int
	required  []Category
	lang      language.Tag
	logger    *slog.Logger
}

// Option configures dictionary and token builds.
type Option func(*buildConfig)

// WithWorkers sets how many goroutines classify tokens. Values below 2 classify
// sequentially.
func WithWorkers(n int) Option {
	return func(c *buildConfig) { c.workers = n }
}

// WithChunkSize sets how many tokens each classification job handles.
func WithChunkSize(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithRequired replaces the categories that must be non-empty after filtering.
func WithRequired(cats ...Category) Option {
	return func(c *buildConfig) { c.required = cats }
}

// WithLanguage sets the language used to lower-case tokens.
func WithLanguage(tag language.Tag) Option {
	return func(c *buildConfig) { c.lang = tag }
}

// WithLogger enables build progress logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *buildConfig) { c.logger = l }
}

func newBuildConfig(opts []Option) *buildConfig {
	cfg := &buildConfig{
		workers:   1,
		chunkSize: defaultChunkSize,
		required:  DefaultRequired,
		lang:      language.Und,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// normalizer lower-cases and NFC-normalizes tokens. A cases.Caser is stateful, so a
// normalizer must not be shared between goroutines.
type normalizer struct {
	caser cases.Caser
}

func newNormalizer(tag language.Tag) *normalizer {
	return &normalizer{caser: cases.Lower(tag)}
}

func (n *normalizer) token(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return n.caser.String(norm.NFC.String(s))
}

// BuildFromDictionary reads a newline-delimited word list, classifies every token with
// m and returns a Vocabulary lexicon. It runs in time proportional to the file and is
// meant to be called once at startup.
func BuildFromDictionary(ctx context.Context, path string, m Morphology, opts ...Option) (*Lexicon, error) {
	cfg := newBuildConfig(opts)
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	nz := newNormalizer(cfg.lang)
	seen := make(map[string]struct{})
	var tokens []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		tok := nz.token(scanner.Text())
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	lex, err := build(ctx, tokens, m, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.logger != nil {
		cfg.logger.Info("dictionary lexicon built",
			slog.String("path", path),
			slog.Int("tokens", len(tokens)),
			slog.Int("nouns", lex.Size(Noun)),
			slog.Int("adjectives", lex.Size(Adjective)),
			slog.Int("verbs", lex.Size(Verb)),
			slog.Duration("took", time.Since(start)),
		)
	}
	return lex, nil
}

// BuildFromTokens runs the dictionary pipeline over tokens already in memory, such as
// words segmented out of a document.
func BuildFromTokens(ctx context.Context, tokens []string, m Morphology, opts ...Option) (*Lexicon, error) {
	cfg := newBuildConfig(opts)
	nz := newNormalizer(cfg.lang)
	normalized := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = nz.token(t); t != "" {
			normalized = append(normalized, t)
		}
	}
	return build(ctx, normalized, m, cfg)
}

func build(ctx context.Context, tokens []string, m Morphology, cfg *buildConfig) (*Lexicon, error) {
	tags, err := classify(ctx, tokens, m, cfg)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(Vocabulary)
	for i, tok := range tokens {
		if tags[i].ok {
			b.Add(tags[i].category, tok)
		}
	}
	return b.Build(cfg.required...)
}

type tagged struct {
	category Category
	ok       bool
}

// classify tags every token. Chunks run on a worker pool, each writing only its own
// index range, so the result matches a sequential pass.
func classify(ctx context.Context, tokens []string, m Morphology, cfg *buildConfig) ([]tagged, error) {
	tags := make([]tagged, len(tokens))
	tagRange := func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			tags[i].category, tags[i].ok = m.Classify(tokens[i])
		}
		return nil
	}

	if cfg.workers < 2 || len(tokens) <= cfg.chunkSize {
		if err := tagRange(ctx, 0, len(tokens)); err != nil {
			return nil, err
		}
		return tags, nil
	}

	pool := ingest.NewWorkerPool(cfg.workers, cfg.workers*2)
	pool.Start(ctx)
	for lo := 0; lo < len(tokens); lo += cfg.chunkSize {
		hi := min(lo+cfg.chunkSize, len(tokens))
		if err := pool.SubmitCtx(ctx, func(ctx context.Context) error {
			return tagRange(ctx, lo, hi)
		}); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if err := pool.Close(); err != nil {
		return nil, err
	}
	// Workers stop early on cancellation, leaving chunks untagged.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// NamesFromFiles reads first names and last names, one per line, preserving order and
// skipping blank lines.
func NamesFromFiles(firstPath, lastPath string) (first, last []string, err error) {
	if first, err = readLines(firstPath); err != nil {
		return nil, nil, err
	}
	if last, err = readLines(lastPath); err != nil {
		return nil, nil, err
	}
	return first, last, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return lines, nil
}
