package repl

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// History manages input history with file persistence. One line per entry,
// oldest first.
type History struct {
	path  string
	lines []string
	mu    sync.RWMutex
}

// NewHistory creates a new History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads history entries from the history file. A missing file is not
// an error.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.lines = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.lines = append(h.lines, line)
	}

	return scanner.Err()
}

// Write appends a new entry to the history. Repeats of the previous entry
// are dropped, and an earlier duplicate is removed so each line appears
// once, at its most recent position.
func (h *History) Write(entry string) (int, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.lines) > 0 && h.lines[len(h.lines)-1] == entry {
		return len(entry), nil
	}

	needsRewrite := false

	for i, line := range h.lines {
		if line == entry {
			h.lines = append(h.lines[:i], h.lines[i+1:]...)
			needsRewrite = true

			break
		}
	}

	h.lines = append(h.lines, entry)

	if needsRewrite {
		return h.rewriteFile()
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.WriteString(entry + "\n")
}

// Get retrieves a historic line by index. Index 0 is the oldest entry.
func (h *History) Get(i int) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.lines) {
		return "", ErrOutOfBounds
	}

	return h.lines[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.lines)
}

// Lines returns a copy of all history entries, oldest first.
func (h *History) Lines() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]string, len(h.lines))
	copy(result, h.lines)

	return result
}

// rewriteFile rewrites the entire history file with current entries.
// Must be called with h.mu held.
func (h *History) rewriteFile() (int, error) {
	file, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	total := 0

	for _, line := range h.lines {
		n, err := file.WriteString(line + "\n")
		if err != nil {
			return total, err
		}

		total += n
	}

	return total, nil
}
