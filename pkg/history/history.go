package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLimit is the number of most recent entries kept.
const DefaultLimit = 1000

// Store persists interactive history between sessions.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, lines []string) error
}

// DefaultPath returns ~/.smol_<prompt>_history. Characters that cannot
// appear in a file name are replaced with underscores.
func DefaultPath(prompt string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, prompt)
	return filepath.Join(home, ".smol_"+name+"_history")
}

// Buffer holds the lines entered during a session, capped at a limit.
type Buffer struct {
	lines []string
	limit int
}

// NewBuffer creates a Buffer. A limit <= 0 uses DefaultLimit.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

// Add appends line. Blank lines are not recorded.
func (b *Buffer) Add(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	b.lines = append(b.lines, line)
	b.trim()
}

// Replace discards the current contents and loads lines.
func (b *Buffer) Replace(lines []string) {
	b.lines = append(b.lines[:0], lines...)
	b.trim()
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Len() int { return len(b.lines) }

// At returns an entry counting back from the newest: At(0) is the last line
// added. It panics when idx is out of range.
func (b *Buffer) At(idx int) string {
	return b.lines[len(b.lines)-1-idx]
}

func (b *Buffer) trim() {
	if over := len(b.lines) - b.limit; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

func tail(lines []string, limit int) []string {
	if limit > 0 && len(lines) > limit {
		return lines[len(lines)-limit:]
	}
	return lines
}
