// Package history keeps the ordered log of generation results for one session.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
)

// DefaultExportPath is where the shell exports history when no path is given.
const DefaultExportPath = "history.txt"

// ErrExportFailed is returned when the export destination cannot be written.
var ErrExportFailed = errors.New("export failed")

// ExportError names the destination that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrExportFailed, e.Path, e.Err)
}

func (e *ExportError) Unwrap() []error { return []error{ErrExportFailed, e.Err} }

// History is an append-only log. The zero value is ready to use.
type History struct {
	mu      sync.Mutex
	entries []string
}

// New returns an empty History.
func New() *History { return &History{} }

// Record appends entry. Line breaks inside entry are folded into single spaces so
// every entry exports as exactly one line.
func (h *History) Record(entry string) {
	entry = strings.Join(strings.Fields(strings.ReplaceAll(entry, "\r", " ")), " ")
	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
}

// Entries returns a copy of the log in append order.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// WriteTo writes one entry per line to w.
func (h *History) WriteTo(w io.Writer) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range h.entries {
		written, err := bw.WriteString(e + "\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Export overwrites path with the log, one entry per line.
func (h *History) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if _, err := h.WriteTo(f); err != nil {
		f.Close()
		return &ExportError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
