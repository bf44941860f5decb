package morph

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-shiori/go-readability"
)

// maxDocumentSize caps how much HTML is read from a single document.
const maxDocumentSize = 10 * 1024 * 1024

var (
	// (?s) lets dot match newlines, (?i) ignores case.
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>) and ruby parentheses (<rp>) so furigana does
// not end up duplicated in the extracted text ("漢字" instead of "漢字かんじ").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}

// ExtractText returns the readable article text of an HTML document.
func ExtractText(r io.Reader, pageURL *url.URL) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if len(body) > maxDocumentSize {
		return "", fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
	}
	article, err := readability.FromReader(bytes.NewReader(SanitizeRuby(body)), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	return article.TextContent, nil
}

// ExtractFile runs ExtractText on a local HTML file.
func ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return ExtractText(f, &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)})
}
