// Package config loads wordgen settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Prefix is prepended to every variable name.
const Prefix = "WORDGEN_"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed value is out of range
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds every setting the CLI reads from the environment. Command-line flags
// override these values.
type Config struct {
	// Dict is a newline-delimited word list. Empty means the static lexicon.
	Dict       string `env:"DICT"`
	FirstNames string `env:"FIRST_NAMES"`
	LastNames  string `env:"LAST_NAMES"`

	// Analyzer is "kagome" or "table". Tags is the tag file the table analyzer reads.
	Analyzer string       `env:"ANALYZER" envDefault:"kagome"`
	Tags     string       `env:"TAGS"`
	Language language.Tag `env:"LANGUAGE" envDefault:"en"`

	Store   string `env:"STORE" envDefault:"wordgen.db"`
	History string `env:"HISTORY" envDefault:"history.txt"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed    uint64 `env:"SEED" envDefault:"0"`
	Workers int    `env:"WORKERS" envDefault:"4"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

var dotenvOnce sync.Once

// Load reads an optional .env file and then parses the environment into a Config.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.Analyzer {
	case "kagome", "table":
	default:
		return fmt.Errorf("%w: analyzer %q (want kagome or table)", ErrInvalidConfig, c.Analyzer)
	}
	if c.Analyzer == "table" && c.Dict != "" && c.Tags == "" {
		return fmt.Errorf("%w: the table analyzer needs %sTAGS", ErrInvalidConfig, Prefix)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	if (c.FirstNames == "") != (c.LastNames == "") {
		return fmt.Errorf("%w: set both %sFIRST_NAMES and %sLAST_NAMES", ErrInvalidConfig, Prefix, Prefix)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
