package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/wordgen/pkg/generator"
)

// testEnv points every file the CLI touches into a temp dir and pins the seed.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WORDGEN_STORE", filepath.Join(dir, "wordgen.db"))
	t.Setenv("WORDGEN_HISTORY", filepath.Join(dir, "history.txt"))
	t.Setenv("WORDGEN_SEED", "5")
	t.Setenv("WORDGEN_DICT", "")
	t.Setenv("WORDGEN_FIRST_NAMES", "")
	t.Setenv("WORDGEN_LAST_NAMES", "")
	t.Setenv("WORDGEN_ANALYZER", "kagome")
	t.Setenv("WORDGEN_LOG_LEVEL", "info")
	t.Setenv("WORDGEN_LOG_FORMAT", "text")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wordgen version dev")
}

func TestGeneratePhrases(t *testing.T) {
	testEnv(t)
	out, _, err := run(t, "", "generate", "--mode", "phrase", "--count", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Phrases (3 pcs.): "), out)
}

func TestGenerateWordsSeeded(t *testing.T) {
	testEnv(t)
	a, _, err := run(t, "", "generate", "-m", "word", "-n", "4", "-l", "6")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "-m", "word", "-n", "4", "-l", "6")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "Random words (length 6, 4 pcs.): "), a)
}

func TestGenerateInvalidParameter(t *testing.T) {
	testEnv(t)
	tests := [][]string{
		{"generate", "--mode", "name", "--count", "0"},
		{"generate", "--mode", "word", "--count", "2"},
		{"generate", "--mode", "word", "--count", "2", "--length", "21"},
		{"generate", "--mode", "sentence", "--count", "2"},
	}
	for _, args := range tests {
		_, stderr, err := run(t, "", args...)
		require.ErrorIs(t, err, generator.ErrInvalidParameter, args)
		assert.Contains(t, stderr, "Error:")
	}
}

func TestGenerateExport(t *testing.T) {
	dir := testEnv(t)
	out, _, err := run(t, "", "generate", "--mode", "name", "--count", "2", "--export", "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "history.txt"))
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestShellSession(t *testing.T) {
	dir := testEnv(t)
	exportPath := filepath.Join(dir, "session.txt")
	script := strings.Join([]string{
		"word 2 5",
		"phrase 1",
		"name 0",
		"dance 3",
		"",
		"history",
		"export " + exportPath,
		"quit",
		"name 1",
	}, "\n")

	out, _, err := run(t, script, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Random words (length 5, 2 pcs.): ")
	assert.Contains(t, out, "Phrases (1 pcs.): ")
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, `unknown command "dance"`)
	assert.Contains(t, out, "1. Random words")
	assert.Contains(t, out, "2. Phrases")
	assert.Contains(t, out, "exported 2 entries to "+exportPath)
	assert.NotContains(t, out, "Random names")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Phrases (1 pcs.): "))
}

func TestShellEndsAtEOF(t *testing.T) {
	testEnv(t)
	out, _, err := run(t, "help\nhistory", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "export [PATH]")
	assert.Contains(t, out, "history is empty")
}

func TestMissingDictionaryFallsBack(t *testing.T) {
	dir := testEnv(t)
	t.Setenv("WORDGEN_ANALYZER", "table")
	t.Setenv("WORDGEN_TAGS", writeFile(t, dir, "tags.tsv", "cat\tNOUN\n"))
	t.Setenv("WORDGEN_DICT", filepath.Join(dir, "missing.txt"))

	out, stderr, err := run(t, "", "generate", "--mode", "phrase", "--count", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Phrases (1 pcs.): "))
	assert.Contains(t, stderr, "dictionary unavailable")
}

func TestImportDictionaryThenGenerate(t *testing.T) {
	dir := testEnv(t)
	t.Setenv("WORDGEN_ANALYZER", "table")
	t.Setenv("WORDGEN_TAGS", writeFile(t, dir, "tags.tsv",
		"cat\tNOUN\nhouse\tNOUN\nred\tADJF\nold\tADJF\nreads\tVERB\nwalks\tVERB\n"))
	dict := writeFile(t, dir, "words.txt", "Cat\nhouse\nthe\nred\nold\nreads\nwalks\nhouse\n")

	out, _, err := run(t, "", "import", "--dict", dict)
	require.NoError(t, err)
	assert.Regexp(t, `noun\s+2`, out)
	assert.Regexp(t, `adjective\s+2`, out)
	assert.Regexp(t, `verb\s+2`, out)

	// The store now wins over the built-in tables.
	out, _, err = run(t, "", "generate", "--mode", "word", "--count", "5")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Random words (5 pcs.): "), out)
	known := map[string]bool{"cat": true, "house": true, "red": true, "old": true, "reads": true, "walks": true}
	items := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "Random words (5 pcs.): ")), ", ")
	require.Len(t, items, 5)
	for _, w := range items {
		assert.True(t, known[w], w)
	}

	// Names come from the built-in tables when the store has none.
	out, _, err = run(t, "", "generate", "--mode", "name")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Random names (1 pcs.): "), out)
}

func TestImportNeedsSource(t *testing.T) {
	testEnv(t)
	_, _, err := run(t, "", "import")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	testEnv(t)
	t.Setenv("WORDGEN_LOG_FORMAT", "text")
	_, _, err := run(t, "", "generate", "--log-format", "xml")
	assert.Error(t, err)

	_, _, err = run(t, "", "generate", "--language", "!!")
	assert.Error(t, err)
}
