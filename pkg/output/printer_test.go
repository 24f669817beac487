package output

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestPrinter(opts ...PrinterOption) (*Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	opts = append([]PrinterOption{WithStyle(Plain())}, opts...)
	return NewPrinter(buf, opts...), buf
}

func TestPlainStyleIsIdentity(t *testing.T) {
	s := Plain()
	assert.Equal(t, "x", s.Emphasis("x"))
	assert.Equal(t, "x", s.Alert("x"))
	assert.Equal(t, "x", s.Caution("x"))
	assert.Equal(t, "x", s.Subdued("x"))
	assert.Equal(t, "x", s.Success("x"))
}

func TestColourStyleEmitsEscapes(t *testing.T) {
	s := NewStyle(termenv.ANSI)
	assert.Contains(t, s.Emphasis("x"), "\x1b[")
	assert.Contains(t, s.Alert("x"), "x")
}

func TestPrinter_Lines(t *testing.T) {
	p, buf := newTestPrinter()
	p.Line("one")
	p.Blank()
	p.Linef("%d", 2)
	p.Print("> ")

	assert.Equal(t, "one\n\n2\n> ", buf.String())
}

func TestPrinter_VerboseAndDebugAreGated(t *testing.T) {
	p, buf := newTestPrinter()
	p.Verbose("hidden")
	p.Debug("hidden")
	assert.Empty(t, buf.String())

	p, buf = newTestPrinter(WithVerbose(true), WithDebug(true))
	p.Verbose("shown")
	p.Debug("trace")
	assert.Equal(t, "shown\n[debug] trace\n", buf.String())
}

func TestPrinter_Table(t *testing.T) {
	p, buf := newTestPrinter()
	p.Table([][]string{{"a", "longer"}, {"bbb", "x"}}, []string{"k", "v"}, 2)

	want := "" +
		"  k    v     \n" +
		"  -----------\n" +
		"  a    longer\n" +
		"  bbb  x     \n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_TableWithoutHeaderOrRows(t *testing.T) {
	p, buf := newTestPrinter()
	p.Table(nil, []string{"k"}, 0)
	assert.Empty(t, buf.String())

	p.Table([][]string{{"ab", "c"}, {"d", "ef"}}, nil, 0)
	assert.Equal(t, "ab  c \nd   ef\n", buf.String())
}

func TestPrinter_CheckResultAndSummary(t *testing.T) {
	p, buf := newTestPrinter()
	p.CheckResult("disk", true, "plenty")
	ok := p.ChecksPassed(false, "", "fix it")

	assert.False(t, ok)
	assert.Equal(t, "pass: disk\n      plenty\n\nsome checks failed\nfix it\n", buf.String())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", Pad("ab", 4))
	assert.Equal(t, "abcdef", Pad("abcdef", 3))
}
