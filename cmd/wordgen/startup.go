package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/japaniel/wordgen/pkg/db"
	"github.com/japaniel/wordgen/pkg/lexicon"
	"github.com/japaniel/wordgen/pkg/morph"
	"github.com/japaniel/wordgen/pkg/session"
)

// newSession builds the lexicon and a seeded session around it.
func (a *app) newSession(ctx context.Context) (*session.Session, error) {
	lex, err := a.loadLexicon(ctx)
	if err != nil {
		return nil, err
	}
	return session.New(lex, a.random(), session.WithLogger(a.logger)), nil
}

func (a *app) random() *rand.Rand {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.logger.Debug("random source seeded", slog.Uint64("seed", seed))
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// loadLexicon picks the first usable source: the store when it holds words, then the
// configured dictionary, then the built-in tables.
func (a *app) loadLexicon(ctx context.Context) (*lexicon.Lexicon, error) {
	lex, err := a.storedLexicon()
	if err != nil {
		return nil, err
	}
	if lex == nil && a.cfg.Dict != "" {
		lex, err = a.dictionaryLexicon(ctx)
		switch {
		case errors.Is(err, lexicon.ErrDictionaryUnavailable):
			a.logger.Warn("dictionary unavailable, using built-in lexicon", slog.Any("error", err))
			lex = nil
		case err != nil:
			return nil, err
		}
	}
	if lex == nil {
		lex = lexicon.BuildStatic()
	}
	return a.attachNames(lex), nil
}

// storedLexicon returns nil without error when the store does not exist or is empty.
func (a *app) storedLexicon() (*lexicon.Lexicon, error) {
	if a.cfg.Store == "" {
		return nil, nil
	}
	if _, err := os.Stat(a.cfg.Store); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	conn, err := db.Open(a.cfg.Store)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	lex, err := db.LoadLexicon(conn)
	if errors.Is(err, lexicon.ErrEmptyCategory) {
		a.logger.Warn("lexicon store incomplete, ignoring it", slog.String("store", a.cfg.Store), slog.Any("error", err))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load lexicon from %s: %w", a.cfg.Store, err)
	}
	a.logger.Info("lexicon loaded from store",
		slog.String("store", a.cfg.Store),
		slog.Int("nouns", lex.Size(lexicon.Noun)),
		slog.Int("adjectives", lex.Size(lexicon.Adjective)),
		slog.Int("verbs", lex.Size(lexicon.Verb)),
	)
	return lex, nil
}

func (a *app) analyzer() (morph.Analyzer, error) {
	return morph.Open(a.cfg.Analyzer, a.cfg.Tags, a.cfg.Language)
}

func (a *app) buildOptions() []lexicon.Option {
	return []lexicon.Option{
		lexicon.WithWorkers(a.cfg.Workers),
		lexicon.WithLanguage(a.cfg.Language),
		lexicon.WithLogger(a.logger),
	}
}

func (a *app) dictionaryLexicon(ctx context.Context) (*lexicon.Lexicon, error) {
	m, err := a.analyzer()
	if err != nil {
		return nil, err
	}
	return lexicon.BuildFromDictionary(ctx, a.cfg.Dict, m, a.buildOptions()...)
}

// attachNames fills the name categories from the configured files, falling back to the
// built-in names when the files are missing or the lexicon has none.
func (a *app) attachNames(lex *lexicon.Lexicon) *lexicon.Lexicon {
	if a.cfg.FirstNames != "" {
		first, last, err := lexicon.NamesFromFiles(a.cfg.FirstNames, a.cfg.LastNames)
		if err == nil && len(first) > 0 && len(last) > 0 {
			return lex.WithNames(first, last)
		}
		a.logger.Warn("name files unusable, keeping existing names", slog.Any("error", err))
	}
	if lex.Require(lexicon.FirstName, lexicon.LastName) != nil {
		static := lexicon.BuildStatic()
		return lex.WithNames(static.Words(lexicon.FirstName), static.Words(lexicon.LastName))
	}
	return lex
}
