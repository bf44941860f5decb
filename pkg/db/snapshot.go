package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/japaniel/wordgen/pkg/ingest"
	"github.com/japaniel/wordgen/pkg/lexicon"
)

const (
	saveBatchSize     = 500
	saveFlushInterval = 250 * time.Millisecond
)

// stored are the categories a snapshot keeps. Alphabet is derived, never stored.
var stored = []lexicon.Category{
	lexicon.Noun, lexicon.Adjective, lexicon.Verb, lexicon.FirstName, lexicon.LastName,
}

// SaveLexicon writes every stored category of lex to conn, recording sourceType and
// path as its provenance. Words already present are kept. Writes are committed in
// batches on a single writer goroutine.
func SaveLexicon(ctx context.Context, conn *sql.DB, lex *lexicon.Lexicon, sourceType, path string) error {
	sourceID, err := CreateOrGetSource(conn, sourceType, path)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	bw := ingest.NewBatchWriter(conn, saveBatchSize, saveFlushInterval)
	for _, c := range stored {
		for _, w := range lex.Words(c) {
			if err := ctx.Err(); err != nil {
				bw.Close()
				return err
			}
			if err := bw.Submit(func(_ context.Context, tx *sql.Tx) error {
				_, err := InsertWord(tx, w, c, sourceID)
				return err
			}); err != nil {
				bw.Close()
				return err
			}
		}
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("save lexicon: %w", err)
	}
	return nil
}

// LoadLexicon rebuilds a Vocabulary lexicon from the store in insertion order. It
// returns an error wrapping lexicon.ErrEmptyCategory when a category required for
// phrases is missing.
func LoadLexicon(db DBExecutor) (*lexicon.Lexicon, error) {
	rows, err := db.Query(`SELECT word, category FROM words ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	b := lexicon.NewBuilder(lexicon.Vocabulary)
	for rows.Next() {
		var word, name string
		if err := rows.Scan(&word, &name); err != nil {
			return nil, err
		}
		c, err := lexicon.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", word, err)
		}
		b.Add(c, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return b.Build(lexicon.DefaultRequired...)
}
