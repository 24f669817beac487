package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer is the single destination for user-facing text.
type Printer struct {
	w       io.Writer
	style   Style
	verbose bool
	debug   bool
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithStyle overrides the detected style.
func WithStyle(s Style) PrinterOption {
	return func(p *Printer) {
		p.style = s
	}
}

// WithVerbose enables Verbose lines.
func WithVerbose(on bool) PrinterOption {
	return func(p *Printer) {
		p.verbose = on
	}
}

// WithDebug enables Debug lines.
func WithDebug(on bool) PrinterOption {
	return func(p *Printer) {
		p.debug = on
	}
}

// NewPrinter writes to w, or to os.Stdout when w is nil.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{w: w, style: DetectStyle(w)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) Writer() io.Writer { return p.w }
func (p *Printer) Style() Style      { return p.style }

// Line writes text followed by a newline.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

func (p *Printer) Linef(format string, args ...any) {
	p.Line(fmt.Sprintf(format, args...))
}

// Print writes text without a trailing newline (prompts).
func (p *Printer) Print(text string) {
	fmt.Fprint(p.w, text)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

func (p *Printer) Banner(text string)  { p.Line(p.style.Alert(text)) }
func (p *Printer) Header(text string)  { p.Line(p.style.Emphasis(text)) }
func (p *Printer) Desc(text string)    { p.Line(p.style.Subdued(text)) }
func (p *Printer) Info(text string)    { p.Line(text) }
func (p *Printer) Success(text string) { p.Line(p.style.Success(text)) }
func (p *Printer) Failure(text string) { p.Line(p.style.Failure(text)) }
func (p *Printer) Warning(text string) { p.Line(p.style.Caution(text)) }
func (p *Printer) Hint(text string)    { p.Line(p.style.Subdued(text)) }
func (p *Printer) Label(text string)   { p.Line(p.style.Caution(text)) }

// Verbose writes only when verbose output is enabled.
func (p *Printer) Verbose(text string) {
	if p.verbose {
		p.Line(p.style.Subdued(text))
	}
}

// Debug writes only when debug output is enabled.
func (p *Printer) Debug(text string) {
	if p.debug {
		p.Line(p.style.Subdued("[debug] " + text))
	}
}

// CheckResult prints a check status line followed by its indented message.
func (p *Printer) CheckResult(name string, passed bool, message string) {
	status := p.style.Failure("fail")
	if passed {
		status = p.style.Success("pass")
	}
	p.Line(status + ": " + name)
	p.Line("      " + message)
}

func (p *Printer) Checking(name string) {
	p.Warning("checking: " + name)
	p.Blank()
}

func (p *Printer) Dropping(target string) {
	p.Warning("dropping: " + target)
	p.Blank()
}

// Done closes a command's output with a success marker and optional hint.
func (p *Printer) Done(hint string) {
	p.Blank()
	p.Success("done")
	if hint != "" {
		p.Hint(hint)
	}
}

// ChecksPassed prints a summary for a batch of checks and returns allPassed.
func (p *Printer) ChecksPassed(allPassed bool, passHint, failHint string) bool {
	p.Blank()
	if allPassed {
		p.Success("all checks passed")
		if passHint != "" {
			p.Hint(passHint)
		}
	} else {
		p.Failure("some checks failed")
		if failHint != "" {
			p.Hint(failHint)
		}
	}
	return allPassed
}

// Pad right-pads text to width display columns.
func Pad(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// Table prints rows aligned in columns. Each column is padded to its widest
// cell across every row, header included. Cells are separated by two spaces.
func (p *Printer) Table(rows [][]string, header []string, indent int) {
	if len(rows) == 0 {
		return
	}

	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}
	widths := columnWidths(all)
	prefix := strings.Repeat(" ", indent)

	if header != nil {
		line := formatRow(header, widths)
		p.Line(prefix + p.style.Emphasis(line))
		p.Line(prefix + strings.Repeat("-", runewidth.StringWidth(line)))
	}
	for _, row := range rows {
		p.Line(prefix + formatRow(row, widths))
	}
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(cells, "  ")
}
