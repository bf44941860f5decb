package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/japaniel/wordgen/pkg/db"
	"github.com/japaniel/wordgen/pkg/lexicon"
	"github.com/japaniel/wordgen/pkg/morph"
)

func newImportCmd(a *app) *cobra.Command {
	var html []string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build a lexicon and save it to the SQLite store",
		Long: `Build a lexicon from a dictionary word list (--dict) or from the article text of
local HTML files (--html, which takes precedence), then save it to the store so later
runs start from it. Words already in the store are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dict := a.cfg.Dict
			if dict == "" && len(html) == 0 {
				return errors.New("import needs --dict or --html")
			}
			if a.cfg.Store == "" {
				return errors.New("no store configured")
			}

			ctx := cmd.Context()
			var (
				lex        *lexicon.Lexicon
				sourceType string
				sourcePath string
				err        error
			)
			if len(html) > 0 {
				lex, err = a.htmlLexicon(ctx, html)
				sourceType, sourcePath = db.SourceHTML, strings.Join(html, ",")
			} else {
				lex, err = a.dictionaryLexicon(ctx)
				sourceType, sourcePath = db.SourceDictionary, dict
			}
			if err != nil {
				return err
			}
			if a.cfg.FirstNames != "" {
				lex = a.attachNames(lex)
			}

			conn, err := db.Open(a.cfg.Store)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.SaveLexicon(ctx, conn, lex, sourceType, sourcePath); err != nil {
				return err
			}
			counts, err := db.CountByCategory(conn)
			if err != nil {
				return err
			}
			a.logger.Info("lexicon imported", slog.String("store", a.cfg.Store), slog.String("source", sourcePath))
			out := cmd.OutOrStdout()
			for _, c := range lexicon.Categories {
				if c == lexicon.Alphabet {
					continue
				}
				fmt.Fprintf(out, "%-10s %d\n", c, counts[c])
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&html, "html", nil, "Local HTML files to harvest words from")
	return cmd
}

// htmlLexicon extracts the article text of every file and classifies the words in it.
func (a *app) htmlLexicon(ctx context.Context, paths []string) (*lexicon.Lexicon, error) {
	m, err := a.analyzer()
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, p := range paths {
		text, err := morph.ExtractFile(p)
		if err != nil {
			return nil, &lexicon.SourceError{Path: p, Err: err}
		}
		words := m.Segment(text)
		a.logger.Debug("document segmented", slog.String("path", p), slog.Int("tokens", len(words)))
		tokens = append(tokens, words...)
	}
	return lexicon.BuildFromTokens(ctx, tokens, m, a.buildOptions()...)
}
