package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineReader is the single source of line-oriented input.
// ReadLine returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Completer is implemented by readers that support tab completion.
type Completer interface {
	SetCompleter(fn func(prefix string) []string)
}

// History is a recall list. At(0) is the most recent entry.
type History interface {
	Len() int
	At(idx int) string
}

// HistoryBinder is implemented by readers that recall earlier lines.
// The reader only reads from the bound history; recording stays with the caller.
type HistoryBinder interface {
	BindHistory(h History)
}

// Reader reads newline-terminated lines from any io.Reader, writing the
// prompt to Writer first. It is the reader used for pipes and tests.
type Reader struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewReader wraps r, defaulting to os.Stdin and os.Stdout.
func NewReader(r io.Reader, w io.Writer) *Reader {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Reader{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

// ReadLine implements LineReader. The trailing line terminator is removed.
// A final line without terminator is returned before io.EOF.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(r.Writer, prompt)
	}

	text, err := r.Reader.ReadString('\n')
	if text != "" {
		return strings.TrimRight(text, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return "", nil
}
