package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/japaniel/wordgen/pkg/lexicon"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// CreateOrGetSource returns existing source id or inserts a new source and returns its id.
func CreateOrGetSource(db DBExecutor, sourceType, path string) (int64, error) {
	sourceType = strings.TrimSpace(sourceType)
	if sourceType == "" {
		return 0, fmt.Errorf("sourceType must be non-empty")
	}

	const maxRetries = 3

	var id int64
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := db.QueryRow(`SELECT id FROM sources WHERE source_type = ? AND path = ?`, sourceType, path).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}

		res, err := db.Exec(`INSERT INTO sources (source_type, path) VALUES (?, ?)`, sourceType, path)
		if err != nil {
			// Another writer inserted the same source; select again.
			if isUniqueConstraintErr(err) {
				continue
			}
			return 0, err
		}
		return res.LastInsertId()
	}
	return 0, fmt.Errorf("could not create or get source after %d retries", maxRetries)
}

// InsertWord stores word under category c. It reports false when the pair already
// exists.
func InsertWord(db DBExecutor, word string, c lexicon.Category, sourceID int64) (bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, fmt.Errorf("word must be non-empty")
	}
	res, err := db.Exec(`INSERT OR IGNORE INTO words (word, category, source_id) VALUES (?, ?, ?)`,
		word, c.String(), nullableID(sourceID))
	if err != nil {
		return false, fmt.Errorf("insert word %q: %w", word, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountByCategory returns how many words the store holds per category.
func CountByCategory(db DBExecutor) (map[lexicon.Category]int, error) {
	rows, err := db.Query(`SELECT category, COUNT(*) FROM words GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[lexicon.Category]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		c, err := lexicon.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out[c] = n
	}
	return out, rows.Err()
}

// GetSources lists import sources, oldest first.
func GetSources(db DBExecutor) ([]Source, error) {
	rows, err := db.Query(`SELECT id, source_type, path, added_at FROM sources ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Source
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.SourceType, &s.Path, &s.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// nullableID returns nil for 0 (meaning no source) else the value.
func nullableID(v int64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
