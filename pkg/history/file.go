package history

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps history as a plain text file, one entry per line.
type FileStore struct {
	Path  string
	Limit int
}

// NewFileStore creates a FileStore. An empty path uses DefaultPath(prompt).
func NewFileStore(path, prompt string) *FileStore {
	if path == "" {
		path = DefaultPath(prompt)
	}
	return &FileStore{Path: path, Limit: DefaultLimit}
}

// Load reads the file. A missing file is an empty history.
func (s *FileStore) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan history file: %w", err)
	}
	return tail(lines, s.Limit), nil
}

// Save rewrites the file with the most recent Limit lines. The write goes
// to a temporary file in the same directory which is then renamed.
func (s *FileStore) Save(ctx context.Context, lines []string) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	var buf bytes.Buffer
	for _, line := range tail(lines, s.Limit) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
