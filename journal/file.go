package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile writes entries to path as JSON lines, one entry per line,
// replacing any existing file.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("journal write: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			f.Close()
			return fmt.Errorf("journal write: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("journal write: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("journal write: %w", err)
	}
	return nil
}

// ReadFile reads a JSON-lines journal back into entries. Blank lines are
// skipped.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal read: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("journal read: line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("journal read: %w", err)
	}
	return entries, nil
}
