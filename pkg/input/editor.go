package input

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Editor is an interactive line editor on a raw-mode terminal. It provides
// cursor editing, in-session recall with the arrow keys and prefix completion
// on Tab. The terminal is only in raw mode while a line is being read.
type Editor struct {
	in        *os.File
	term      *term.Terminal
	completer func(prefix string) []string
}

// NewEditor binds an editor to a terminal input and output.
func NewEditor(in *os.File, out io.Writer) *Editor {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	e := &Editor{in: in}
	e.term = term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "")
	e.term.AutoCompleteCallback = e.complete
	return e
}

// SetCompleter implements Completer.
func (e *Editor) SetCompleter(fn func(prefix string) []string) {
	e.completer = fn
}

// BindHistory implements HistoryBinder. Up and down walk h; lines the
// terminal accepts are not added to it.
func (e *Editor) BindHistory(h History) {
	if h == nil {
		return
	}
	e.term.History = recall{h}
}

// recall adapts a History to the terminal, which records every accepted line
// itself unless Add is a no-op.
type recall struct {
	History
}

func (recall) Add(string) {}

// ReadLine implements LineReader.
func (e *Editor) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fd := int(e.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, state)

	e.term.SetPrompt(prompt)
	return e.term.ReadLine()
}

func (e *Editor) complete(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' || e.completer == nil {
		return "", 0, false
	}
	// only the first word is completed
	prefix := line[:pos]
	if strings.ContainsAny(prefix, " \t") {
		return "", 0, false
	}

	matches := e.completer(prefix)
	switch len(matches) {
	case 0:
		return "", 0, false
	case 1:
		completed := matches[0] + " "
		return completed + line[pos:], len(completed), true
	}

	common := CommonPrefix(matches)
	if len(common) > len(prefix) {
		return common + line[pos:], len(common), true
	}
	e.term.Write([]byte(strings.Join(matches, "  ") + "\n"))
	return "", 0, false
}
