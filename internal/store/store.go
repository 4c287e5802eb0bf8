package store

import (
	"bufio"
	"fmt"
	"os"
)

// Paths locates the four collection files.
type Paths struct {
	Vehicles     string
	Customers    string
	Rentals      string
	Transactions string
}

// Store gives line-level access to the flat-file collections. Every file
// handle is opened and closed within a single call.
type Store struct {
	Paths Paths
}

func New(p Paths) *Store {
	return &Store{Paths: p}
}

// ReadLines returns every line of the file. A missing file is an empty
// collection, not an error.
func (s *Store) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// AppendLine adds one newline-terminated line to the end of the file,
// creating it if needed. Existing lines are never touched.
func (s *Store) AppendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// RewriteLines replaces the whole file content with the given lines.
// Only the rental delete-by-key path uses this.
func (s *Store) RewriteLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
