package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/japaniel/wordgen/pkg/config"
)

// app carries state shared by every subcommand once the root has loaded it.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// rootFlags override config values when set on the command line.
type rootFlags struct {
	dict       string
	firstNames string
	lastNames  string
	analyzer   string
	tags       string
	language   string
	store      string
	seed       uint64
	workers    int
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var f rootFlags

	root := &cobra.Command{
		Use:   "wordgen",
		Short: "Generate random words, phrases and names",
		Long: `wordgen produces random words, adjective/noun/verb phrases and full names from
a built-in lexicon, a dictionary word list, or a lexicon imported into SQLite.
Settings come from WORDGEN_* environment variables (optionally via .env) and can be
overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := f.apply(cmd, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&f.dict, "dict", "", "Newline-delimited dictionary word list")
	pf.StringVar(&f.firstNames, "first-names", "", "File with one first name per line")
	pf.StringVar(&f.lastNames, "last-names", "", "File with one last name per line")
	pf.StringVar(&f.analyzer, "analyzer", "", "Part-of-speech analyzer: kagome or table")
	pf.StringVar(&f.tags, "tags", "", "Tag table for the table analyzer")
	pf.StringVar(&f.language, "language", "", "BCP 47 language used to lower-case dictionary words")
	pf.StringVar(&f.store, "store", "", "SQLite lexicon store")
	pf.Uint64Var(&f.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	pf.IntVar(&f.workers, "workers", 0, "Goroutines classifying dictionary words")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newVersionCmd(),
		newGenerateCmd(a),
		newShellCmd(a),
		newImportCmd(a),
	)
	return root
}

func (f *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("dict") {
		cfg.Dict = f.dict
	}
	if changed("first-names") {
		cfg.FirstNames = f.firstNames
	}
	if changed("last-names") {
		cfg.LastNames = f.lastNames
	}
	if changed("analyzer") {
		cfg.Analyzer = f.analyzer
	}
	if changed("tags") {
		cfg.Tags = f.tags
	}
	if changed("language") {
		tag, err := language.Parse(f.language)
		if err != nil {
			return fmt.Errorf("invalid --language: %w", err)
		}
		cfg.Language = tag
	}
	if changed("store") {
		cfg.Store = f.store
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	return nil
}
